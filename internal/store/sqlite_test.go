package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icmixed/league-cli/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func intPtr(n int) *int { return &n }

func cleanedRows() []model.Match {
	return []model.Match{
		{
			Season: "2025", Division: "A - West", Date: "2025-06-01",
			HomeTeam: "Toronto Aces", AwayTeam: "Scarborough Smashers",
			LineRaw: "1", Score: "6-4, 6-3",
			HomePlayer1: "Alice", HomePlayer2: "Alice2",
			AwayPlayer1: "Bob", AwayPlayer2: "Bob2",
			HomeGames: intPtr(12), AwayGames: intPtr(7),
			DateFixed:     model.NewMatchDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
			DivisionLevel: model.DivisionA, LineValidated: 1,
			TeamMatchID: 1, TeamMatchLabel: "2025-06-01 A - West Toronto Aces vs Scarborough Smashers",
			MatchID: 1, MatchLabel: "...", LineLabel: "Ladies",
		},
		{
			Season: "2025", Division: "B - East", Date: "garbage",
			HomeTeam: "H", AwayTeam: "A1", LineRaw: "9",
			TeamMatchID: 2, MatchID: 2,
		},
	}
}

func TestSQLiteRunLifecycle(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	report := model.Report{Rows: 2, BadDates: 1, DistinctMatchIDs: 2,
		BadLines: map[string]int{"9": 1}}

	run, err := s.CreateRun(ctx, "data/processed", report)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 2, run.Rows)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, report.BadLines, got.Report.BadLines)

	latest, err := s.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, run.ID, latest.ID)
}

func TestSQLiteGetRunNotFound(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.GetRun(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.LatestRun(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteInsertAndListMatches(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "test", model.Report{Rows: 2, DistinctMatchIDs: 2})
	require.NoError(t, err)
	require.NoError(t, s.InsertMatches(ctx, run.ID, cleanedRows()))

	all, err := s.ListMatches(ctx, MatchFilter{RunID: run.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)

	first := all[0]
	assert.Equal(t, "Toronto Aces", first.HomeTeam)
	assert.Equal(t, model.DivisionA, first.DivisionLevel)
	assert.Equal(t, model.Line(1), first.LineValidated)
	assert.True(t, first.DateFixed.Valid)
	require.NotNil(t, first.HomeGames)
	assert.Equal(t, 12, *first.HomeGames)

	// Second row round-trips its null columns.
	second := all[1]
	assert.False(t, second.DateFixed.Valid)
	assert.Equal(t, model.LineInvalid, second.LineValidated)
	assert.Nil(t, second.HomeGames)
}

func TestSQLiteListMatchesFilters(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "test", model.Report{Rows: 2, DistinctMatchIDs: 2})
	require.NoError(t, err)
	require.NoError(t, s.InsertMatches(ctx, run.ID, cleanedRows()))

	byDivision, err := s.ListMatches(ctx, MatchFilter{Division: "A"})
	require.NoError(t, err)
	require.Len(t, byDivision, 1)
	assert.Equal(t, "A - West", byDivision[0].Division)

	byTeam, err := s.ListMatches(ctx, MatchFilter{Team: "Scarborough Smashers"})
	require.NoError(t, err)
	assert.Len(t, byTeam, 1)

	limited, err := s.ListMatches(ctx, MatchFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := s.ListMatches(ctx, MatchFilter{Team: "Nobody"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteInsertMatchesEmpty(t *testing.T) {
	s := newTestSQLite(t)
	assert.NoError(t, s.InsertMatches(context.Background(), "any", nil))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "dsn")
	assert.Error(t, err)
}
