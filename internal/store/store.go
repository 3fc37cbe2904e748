// Package store persists cleaned match batches into SQLite or Postgres.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/icmixed/league-cli/internal/model"
)

// ErrNotFound is returned when a requested run does not exist.
var ErrNotFound = eris.New("store: not found")

// MatchFilter narrows ListMatches results. Zero values mean no filter.
type MatchFilter struct {
	RunID    string `json:"run_id,omitempty"`
	Division string `json:"division,omitempty"` // matches the division_level column
	Team     string `json:"team,omitempty"`     // home or away
	Limit    int    `json:"limit,omitempty"`
}

// Store is the persistence interface for cleaned match data.
type Store interface {
	// CreateRun records one ingest of a cleaned batch, including its
	// validation report.
	CreateRun(ctx context.Context, source string, report model.Report) (*model.IngestRun, error)
	GetRun(ctx context.Context, id string) (*model.IngestRun, error)
	LatestRun(ctx context.Context) (*model.IngestRun, error)

	// InsertMatches stores the cleaned rows of a run.
	InsertMatches(ctx context.Context, runID string, rows []model.Match) error
	ListMatches(ctx context.Context, filter MatchFilter) ([]model.Match, error)

	Migrate(ctx context.Context) error
	Close() error
}

// Open selects a backend by driver name ("sqlite" or "postgres").
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "sqlite":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(ctx, dsn)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}
