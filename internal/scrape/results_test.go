package scrape

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerAnchor(name, id string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(id))
	return fmt.Sprintf(`<a href="/player.php?p=%s">%s</a>`, enc, name)
}

func resultsPage() string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="match_results_table">`)
	b.WriteString(`<div class="match_rest">June 1st, 2025</div>`)
	b.WriteString(`<div class="team_name"><a href="#">Toronto Aces</a></div>`)
	b.WriteString(`<div class="team_name2"><a href="#">Scarborough Smashers</a></div>`)

	// Header block, skipped by the extractor.
	b.WriteString(`<div class="match_results_content"><div class="team_name">Home</div><div class="team_name2">Away</div></div>`)

	// Line 1: played doubles match.
	b.WriteString(`<div class="match_results_content">`)
	b.WriteString(`<div class="team_name">` + playerAnchor("Alice", "P100") + playerAnchor("Alice2", "P101") + `</div>`)
	b.WriteString(`<div class="team_name2">` + playerAnchor("Bob", "P200") + playerAnchor("Bob2", "P201") + `</div>`)
	b.WriteString(`<div class="match_rest">6-4, 6-7 [4-7], 1-0 [10-8]</div>`)
	b.WriteString(`</div>`)

	// Line 2: forfeit, only home players listed.
	b.WriteString(`<div class="match_results_content">`)
	b.WriteString(`<div class="team_name">` + playerAnchor("Carol", "P300") + playerAnchor("Carol2", "P301") + `</div>`)
	b.WriteString(`<div class="team_name2">By Default</div>`)
	b.WriteString(`<div class="match_rest">6-0, 6-0</div>`)
	b.WriteString(`</div>`)

	// Line 3: played, but the away side lists only one player.
	b.WriteString(`<div class="match_results_content">`)
	b.WriteString(`<div class="team_name">` + playerAnchor("Dora", "P400") + playerAnchor("Dora2", "P401") + `</div>`)
	b.WriteString(`<div class="team_name2">` + playerAnchor("Eve", "P500") + `</div>`)
	b.WriteString(`<div class="match_rest">6-3, 6-2</div>`)
	b.WriteString(`</div>`)

	// Empty placeholder block: no score, no players.
	b.WriteString(`<div class="match_results_content"><div class="team_name"></div><div class="team_name2"></div></div>`)

	b.WriteString(`</div></body></html>`)
	return b.String()
}

func TestExtractMatches(t *testing.T) {
	matches, err := ExtractMatches(strings.NewReader(resultsPage()), "2025", "A - West")
	require.NoError(t, err)
	require.Len(t, matches, 3)

	played := matches[0]
	assert.Equal(t, "2025", played.Season)
	assert.Equal(t, "A - West", played.Division)
	assert.Equal(t, "June 1st, 2025", played.Date)
	assert.Equal(t, "Toronto Aces", played.HomeTeam)
	assert.Equal(t, "Scarborough Smashers", played.AwayTeam)
	assert.Equal(t, "1", played.LineRaw)
	assert.Equal(t, "6-4, 6-7 [4-7], 1-0 [10-8]", played.Score)
	assert.False(t, played.Defaulted)
	assert.Equal(t, "Alice", played.HomePlayer1)
	assert.Equal(t, "P101", played.HomeID2)
	assert.Equal(t, "Bob2", played.AwayPlayer2)
	require.NotNil(t, played.HomeGames)
	assert.Equal(t, 13, *played.HomeGames)
	assert.Equal(t, 11, *played.AwayGames)
}

func TestExtractMatchesForfeit(t *testing.T) {
	matches, err := ExtractMatches(strings.NewReader(resultsPage()), "2025", "A - West")
	require.NoError(t, err)

	forfeit := matches[1]
	assert.Equal(t, "2", forfeit.LineRaw)
	assert.True(t, forfeit.Defaulted)
	assert.Equal(t, "Carol", forfeit.HomePlayer1)
	assert.Empty(t, forfeit.AwayPlayer1)
	// No games totals for a defaulted match.
	assert.Nil(t, forfeit.HomeGames)
}

func TestExtractMatchesPartialSide(t *testing.T) {
	matches, err := ExtractMatches(strings.NewReader(resultsPage()), "2025", "A - West")
	require.NoError(t, err)

	partial := matches[2]
	assert.Equal(t, "3", partial.LineRaw)
	assert.False(t, partial.Defaulted)
	// The complete side is kept even when the other is short a player.
	assert.Equal(t, "Dora", partial.HomePlayer1)
	assert.Equal(t, "P401", partial.HomeID2)
	assert.Empty(t, partial.AwayPlayer1)
	assert.Empty(t, partial.AwayID1)
	// Games totals still need a full doubles pairing.
	assert.Nil(t, partial.HomeGames)
	assert.Nil(t, partial.AwayGames)
}

func TestExtractMatchesEmptyPage(t *testing.T) {
	matches, err := ExtractMatches(strings.NewReader("<html><body></body></html>"), "2025", "A")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestDecodePlayerID(t *testing.T) {
	enc := base64.StdEncoding.EncodeToString([]byte("P42"))
	assert.Equal(t, "P42", DecodePlayerID("/player.php?p="+enc))

	// Not base64: fall back to the raw parameter.
	assert.Equal(t, "not*base64*", DecodePlayerID("/player.php?p=not*base64*"))

	assert.Equal(t, "N/A", DecodePlayerID("/player.php"))
	assert.Equal(t, "N/A", DecodePlayerID("://bad url"))
}

func TestCleanFilename(t *testing.T) {
	assert.Equal(t, "A-West", CleanFilename("A - West"))
	assert.Equal(t, "Majors-Central", CleanFilename("Majors - Central"))
	assert.Equal(t, "2025", CleanFilename("2025"))
}
