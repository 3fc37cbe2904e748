package fetcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icmixed/league-cli/internal/model"
)

const sampleCSV = `Season,Division,Date,Home Team,Away Team,Line,Score,Defaulted,Home Player 1,Home ID 1,Home Player 2,Home ID 2,Away Player 1,Away ID 1,Away Player 2,Away ID 2,Home Games Won,Away Games Won
2025,A - West,2025-06-01,Toronto Aces,Scarborough Smashers,1,"6-4, 6-3",false,Alice,a1,Alice2,a2,Bob,b1,Bob2,b2,12,7
2025,A - West,2025-06-01,Toronto Aces,Scarborough Smashers,2,"4-6, 6-3, 1-0 [10-6]",false,Carol,c1,Carol2,c2,Dan,d1,Dan2,d2,11,9
`

func TestReadMatches(t *testing.T) {
	rows, err := ReadMatches(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Toronto Aces", rows[0].HomeTeam)
	assert.Equal(t, "1", rows[0].LineRaw)
	assert.Equal(t, "6-4, 6-3", rows[0].Score)
	assert.False(t, rows[0].Defaulted)
	require.NotNil(t, rows[0].HomeGames)
	assert.Equal(t, 12, *rows[0].HomeGames)
}

func TestReadMatchesEmpty(t *testing.T) {
	rows, err := ReadMatches(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteMatchesRoundTrip(t *testing.T) {
	orig, err := ReadMatches(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, WriteMatches(&b, orig))

	again, err := ReadMatches(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, orig, again)
}

func TestDiscoverAndLoadAll(t *testing.T) {
	dir := t.TempDir()
	// Written out of lexical order on purpose.
	for _, name := range []string{"ic_mixed_matches_2025_B-East.csv", "ic_mixed_matches_2025_A-West.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(sampleCSV), 0o644))
	}

	paths, err := Discover(filepath.Join(dir, "ic_mixed_matches*.csv"))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.True(t, strings.Contains(paths[0], "A-West"), "paths must sort deterministically")

	rows, err := LoadAll(context.Background(), paths)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestLoadAllMissingFile(t *testing.T) {
	_, err := LoadAll(context.Background(), []string{filepath.Join(t.TempDir(), "nope.csv")})
	assert.Error(t, err)
}

func TestWriteMatchesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cleaned.csv")
	rows := []model.Match{{Season: "2025", Division: "A", HomeTeam: "H", AwayTeam: "A1", LineRaw: "1"}}

	require.NoError(t, WriteMatchesFile(path, rows))

	got, err := ReadMatchesFile(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "H", got[0].HomeTeam)
}

func TestWritePlayersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	players := []model.Player{{Division: "A - West", Team: "Toronto Aces", Name: "Alice", Role: "Captain"}}

	require.NoError(t, WritePlayersFile(path, players))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Toronto Aces")
	assert.Contains(t, string(b), "Captain")
}
