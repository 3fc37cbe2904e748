// Package model defines the match schema shared by the scrape, clean,
// store, and serve layers.
package model

// Match is one reported line of play. The raw columns come straight from
// the results portal; the derived columns are filled in by the cleaning
// pipeline and stay empty until then. Column names are stable for
// downstream consumers.
type Match struct {
	Season      string `csv:"Season" json:"season"`
	Division    string `csv:"Division" json:"division"`
	Date        string `csv:"Date" json:"date"`
	HomeTeam    string `csv:"Home Team" json:"home_team"`
	AwayTeam    string `csv:"Away Team" json:"away_team"`
	LineRaw     string `csv:"Line" json:"line"`
	Score       string `csv:"Score" json:"score"`
	Defaulted   bool   `csv:"Defaulted" json:"defaulted"`
	HomePlayer1 string `csv:"Home Player 1" json:"home_player_1"`
	HomeID1     string `csv:"Home ID 1" json:"home_id_1"`
	HomePlayer2 string `csv:"Home Player 2" json:"home_player_2"`
	HomeID2     string `csv:"Home ID 2" json:"home_id_2"`
	AwayPlayer1 string `csv:"Away Player 1" json:"away_player_1"`
	AwayID1     string `csv:"Away ID 1" json:"away_id_1"`
	AwayPlayer2 string `csv:"Away Player 2" json:"away_player_2"`
	AwayID2     string `csv:"Away ID 2" json:"away_id_2"`
	HomeGames   *int   `csv:"Home Games Won" json:"home_games_won,omitempty"`
	AwayGames   *int   `csv:"Away Games Won" json:"away_games_won,omitempty"`

	// Derived by the cleaning pipeline.
	DateFixed      MatchDate     `csv:"Date_fixed" json:"date_fixed"`
	DivisionLevel  DivisionLevel `csv:"division_level" json:"division_level"`
	LineValidated  Line          `csv:"Line_validated" json:"line_validated"`
	TeamMatchID    int           `csv:"temp_team_match_id" json:"team_match_id"`
	TeamMatchLabel string        `csv:"team_match_id_label" json:"team_match_label"`
	MatchID        int           `csv:"temp_match_id" json:"match_id"`
	MatchLabel     string        `csv:"temp_match_id_label" json:"match_label"`
	LineLabel      string        `csv:"Line_label" json:"line_label"`
}

// TeamMatchKey groups rows belonging to one head-to-head fixture. The
// division component is the text as written, not the classified tier, to
// match the source grouping behavior exactly.
type TeamMatchKey struct {
	Date     string
	Division string
	Home     string
	Away     string
}

// TeamMatchKey returns the fixture grouping key for the row.
func (m Match) TeamMatchKey() TeamMatchKey {
	return TeamMatchKey{
		Date:     m.DateFixed.Key(),
		Division: m.Division,
		Home:     m.HomeTeam,
		Away:     m.AwayTeam,
	}
}

// MatchKey uniquely identifies one individual match: the fixture key plus
// the line slot and all four player names.
type MatchKey struct {
	Team           TeamMatchKey
	Line           string
	HomeP1, HomeP2 string
	AwayP1, AwayP2 string
}

// MatchKey returns the individual-match identity key for the row.
func (m Match) MatchKey() MatchKey {
	line, _ := m.LineValidated.MarshalText()
	return MatchKey{
		Team:   m.TeamMatchKey(),
		Line:   string(line),
		HomeP1: m.HomePlayer1,
		HomeP2: m.HomePlayer2,
		AwayP1: m.AwayPlayer1,
		AwayP2: m.AwayPlayer2,
	}
}

// Player is one roster entry scraped from a team page.
type Player struct {
	Division string `csv:"Division" json:"division"`
	Team     string `csv:"Team" json:"team"`
	TeamID   string `csv:"Team ID" json:"team_id"`
	Name     string `csv:"Name" json:"name"`
	Suffix   string `csv:"Suffix" json:"suffix"`
	ID       string `csv:"ID" json:"id"`
	Role     string `csv:"Role" json:"role"`
}
