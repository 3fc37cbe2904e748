package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/icmixed/league-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses; pgxmock satisfies it
// in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using a pgx connection pool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS ingest_runs (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	rows       INTEGER NOT NULL,
	report     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
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
	defaulted        BOOLEAN NOT NULL DEFAULT false,
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

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) CreateRun(ctx context.Context, source string, report model.Report) (*model.IngestRun, error) {
	run := &model.IngestRun{
		ID:        uuid.New().String(),
		Source:    source,
		Rows:      report.Rows,
		Report:    report,
		CreatedAt: time.Now().UTC(),
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal report")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO ingest_runs (id, source, rows, report, created_at) VALUES ($1, $2, $3, $4, $5)`,
		run.ID, run.Source, run.Rows, string(reportJSON), run.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert run")
	}
	return run, nil
}

func (s *PostgresStore) GetRun(ctx context.Context, id string) (*model.IngestRun, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source, rows, report, created_at FROM ingest_runs WHERE id = $1`, id)
	return scanPgRun(row)
}

func (s *PostgresStore) LatestRun(ctx context.Context) (*model.IngestRun, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source, rows, report, created_at FROM ingest_runs ORDER BY created_at DESC, id DESC LIMIT 1`)
	return scanPgRun(row)
}

func scanPgRun(row pgx.Row) (*model.IngestRun, error) {
	var (
		run        model.IngestRun
		reportJSON string
	)
	err := row.Scan(&run.ID, &run.Source, &run.Rows, &reportJSON, &run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan run")
	}
	if err := json.Unmarshal([]byte(reportJSON), &run.Report); err != nil {
		return nil, eris.Wrap(err, "postgres: decode report")
	}
	return &run, nil
}

// InsertMatches bulk-loads the cleaned rows over the COPY protocol.
func (s *PostgresStore) InsertMatches(ctx context.Context, runID string, rows []model.Match) error {
	if len(rows) == 0 {
		return nil
	}

	values := make([][]any, len(rows))
	for i, m := range rows {
		values[i] = matchValues(runID, m)
	}

	n, err := s.pool.CopyFrom(ctx, pgx.Identifier{"matches"}, matchColumns, pgx.CopyFromRows(values))
	if err != nil {
		return eris.Wrap(err, "postgres: copy matches")
	}
	if n != int64(len(rows)) {
		return eris.Errorf("postgres: copied %d of %d matches", n, len(rows))
	}
	return nil
}

func (s *PostgresStore) ListMatches(ctx context.Context, filter MatchFilter) ([]model.Match, error) {
	query, args := buildListQuery(filter, "$")

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list matches")
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
	return out, eris.Wrap(rows.Err(), "postgres: iterate matches")
}
