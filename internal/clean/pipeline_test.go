package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icmixed/league-cli/internal/model"
)

func rawFixture() []model.Match {
	return []model.Match{
		{Date: "2025-06-03", Division: "A - West", HomeTeam: "Oakville Rockets", AwayTeam: "Mississauga Smashers",
			LineRaw: "1", HomePlayer1: "Charlie", HomePlayer2: "Charlie2", AwayPlayer1: "David", AwayPlayer2: "David2"},
		{Date: "6/1/2025", Division: "A - West", HomeTeam: "Toronto Aces", AwayTeam: "Scarborough Smashers",
			LineRaw: "2", HomePlayer1: "Alice", HomePlayer2: "Alice2", AwayPlayer1: "Bob", AwayPlayer2: "Bob2"},
		{Date: "6/1/2025", Division: "A - West", HomeTeam: "Toronto Aces", AwayTeam: "Scarborough Smashers",
			LineRaw: "1", HomePlayer1: "Eve", HomePlayer2: "Eve2", AwayPlayer1: "Frank", AwayPlayer2: "Frank2"},
	}
}

func TestRunEndToEnd(t *testing.T) {
	out, report := Run(rawFixture())
	require.Len(t, out, 3)

	assert.True(t, report.Clean())
	assert.Equal(t, 2, report.TeamMatches)
	assert.Equal(t, 3, report.DistinctMatchIDs)

	// Sorted by date then key: the two Aces rows first, lines in order.
	assert.Equal(t, "Toronto Aces", out[0].HomeTeam)
	assert.Equal(t, model.Line(1), out[0].LineValidated)
	assert.Equal(t, 1, out[0].TeamMatchID)
	assert.Equal(t, 1, out[1].TeamMatchID)
	assert.Equal(t, 2, out[2].TeamMatchID)

	assert.Equal(t, "2025-06-01 A - West Toronto Aces vs Scarborough Smashers", out[0].TeamMatchLabel)
	assert.Contains(t, out[0].MatchLabel, "(1 - Ladies)")
	assert.Contains(t, out[0].MatchLabel, "Eve & Eve2 vs Frank & Frank2")
	assert.Equal(t, []int{1, 2, 3}, []int{out[0].MatchID, out[1].MatchID, out[2].MatchID})
}

func TestRunDoesNotMutateInput(t *testing.T) {
	rows := rawFixture()
	_, _ = Run(rows)

	assert.Zero(t, rows[0].TeamMatchID)
	assert.False(t, rows[0].DateFixed.Valid)
}

// stripDerived clears the derived columns the pipeline writes, leaving the
// raw columns untouched.
func stripDerived(rows []model.Match) []model.Match {
	out := make([]model.Match, len(rows))
	for i, r := range rows {
		r.DateFixed = model.MatchDate{}
		r.DivisionLevel = model.DivisionUnclassified
		r.LineValidated = model.LineInvalid
		r.TeamMatchID = 0
		r.TeamMatchLabel = ""
		r.MatchID = 0
		r.MatchLabel = ""
		r.LineLabel = ""
		out[i] = r
	}
	return out
}

func TestRunIdempotent(t *testing.T) {
	first, firstReport := Run(rawFixture())
	second, secondReport := Run(stripDerived(first))

	assert.Equal(t, first, second)
	assert.Equal(t, firstReport, secondReport)
}

func TestRunFlagsDuplicateLineWithinFixture(t *testing.T) {
	rows := rawFixture()
	rows[2].LineRaw = "2" // now two line-2 rows in the same fixture

	_, report := Run(rows)

	require.Len(t, report.BadTeamMatches, 1)
	assert.False(t, report.Clean())
	// Rows differ by players, so match IDs stay distinct.
	assert.False(t, report.MatchIDCollision())
}

func TestRunEmptyBatch(t *testing.T) {
	out, report := Run(nil)
	assert.Empty(t, out)
	assert.Zero(t, report.Rows)
	assert.False(t, report.AllDatesBad)
}
