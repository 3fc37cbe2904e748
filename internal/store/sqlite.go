package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/icmixed/league-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given DSN and configures WAL
// mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS ingest_runs (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	rows       INTEGER NOT NULL,
	report     TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS matches (
	run_id           TEXT NOT NULL REFERENCES ingest_runs(id),
	season           TEXT NOT NULL DEFAULT '',
	division         TEXT NOT NULL DEFAULT '',
	date_raw         TEXT NOT NULL DEFAULT '',
	home_team        TEXT NOT NULL DEFAULT '',
	away_team        TEXT NOT NULL DEFAULT '',
	line_raw         TEXT NOT NULL DEFAULT '',
	score            TEXT NOT NULL DEFAULT '',
	defaulted        INTEGER NOT NULL DEFAULT 0,
	home_player_1    TEXT NOT NULL DEFAULT '',
	home_id_1        TEXT NOT NULL DEFAULT '',
	home_player_2    TEXT NOT NULL DEFAULT '',
	home_id_2        TEXT NOT NULL DEFAULT '',
	away_player_1    TEXT NOT NULL DEFAULT '',
	away_id_1        TEXT NOT NULL DEFAULT '',
	away_player_2    TEXT NOT NULL DEFAULT '',
	away_id_2        TEXT NOT NULL DEFAULT '',
	home_games_won   INTEGER,
	away_games_won   INTEGER,
	date_fixed       TEXT NOT NULL DEFAULT '',
	division_level   TEXT NOT NULL DEFAULT '',
	line_validated   INTEGER,
	team_match_id    INTEGER NOT NULL,
	team_match_label TEXT NOT NULL DEFAULT '',
	match_id         INTEGER NOT NULL,
	match_label      TEXT NOT NULL DEFAULT '',
	line_label       TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_matches_run_id ON matches(run_id);
CREATE INDEX IF NOT EXISTS idx_matches_division_level ON matches(division_level);
CREATE INDEX IF NOT EXISTS idx_matches_team_match_id ON matches(run_id, team_match_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateRun(ctx context.Context, source string, report model.Report) (*model.IngestRun, error) {
	run := &model.IngestRun{
		ID:        uuid.New().String(),
		Source:    source,
		Rows:      report.Rows,
		Report:    report,
		CreatedAt: time.Now().UTC(),
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal report")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO ingest_runs (id, source, rows, report, created_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.Rows, string(reportJSON), run.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}
	return run, nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*model.IngestRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, rows, report, created_at FROM ingest_runs WHERE id = ?`, id)
	return scanRun(row)
}

func (s *SQLiteStore) LatestRun(ctx context.Context) (*model.IngestRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, rows, report, created_at FROM ingest_runs ORDER BY created_at DESC, id DESC LIMIT 1`)
	return scanRun(row)
}

func scanRun(row rowScanner) (*model.IngestRun, error) {
	var (
		run        model.IngestRun
		reportJSON string
	)
	err := row.Scan(&run.ID, &run.Source, &run.Rows, &reportJSON, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "store: scan run")
	}
	if err := json.Unmarshal([]byte(reportJSON), &run.Report); err != nil {
		return nil, eris.Wrap(err, "store: decode report")
	}
	return &run, nil
}

func (s *SQLiteStore) InsertMatches(ctx context.Context, runID string, rows []model.Match) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	placeholders := "?" + strings.Repeat(", ?", len(matchColumns)-1)
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO matches (`+strings.Join(matchColumns, ", ")+`) VALUES (`+placeholders+`)`)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare insert")
	}
	defer stmt.Close()

	for _, m := range rows {
		if _, err := stmt.ExecContext(ctx, matchValues(runID, m)...); err != nil {
			return eris.Wrap(err, "sqlite: insert match")
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit matches")
}

func (s *SQLiteStore) ListMatches(ctx context.Context, filter MatchFilter) ([]model.Match, error) {
	query, args := buildListQuery(filter, "?")

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list matches")
	}
	defer rows.Close()

	var out []model.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate matches")
}
