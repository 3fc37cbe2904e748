package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/icmixed/league-cli/internal/model"
)

// matchColumns is the column order shared by both backends for inserts and
// selects of the matches table.
var matchColumns = []string{
	"run_id",
	"season", "division", "date_raw", "home_team", "away_team",
	"line_raw", "score", "defaulted",
	"home_player_1", "home_id_1", "home_player_2", "home_id_2",
	"away_player_1", "away_id_1", "away_player_2", "away_id_2",
	"home_games_won", "away_games_won",
	"date_fixed", "division_level", "line_validated",
	"team_match_id", "team_match_label",
	"match_id", "match_label", "line_label",
}

// matchValues flattens a cleaned row into insert values in matchColumns
// order.
func matchValues(runID string, m model.Match) []any {
	dateFixed, _ := m.DateFixed.MarshalText()

	var line any
	if m.LineValidated.Valid() {
		line = int64(m.LineValidated)
	}
	var homeGames, awayGames any
	if m.HomeGames != nil {
		homeGames = int64(*m.HomeGames)
	}
	if m.AwayGames != nil {
		awayGames = int64(*m.AwayGames)
	}

	return []any{
		runID,
		m.Season, m.Division, m.Date, m.HomeTeam, m.AwayTeam,
		m.LineRaw, m.Score, m.Defaulted,
		m.HomePlayer1, m.HomeID1, m.HomePlayer2, m.HomeID2,
		m.AwayPlayer1, m.AwayID1, m.AwayPlayer2, m.AwayID2,
		homeGames, awayGames,
		string(dateFixed), string(m.DivisionLevel), line,
		m.TeamMatchID, m.TeamMatchLabel,
		m.MatchID, m.MatchLabel, m.LineLabel,
	}
}

// rowScanner abstracts sql.Rows and pgx.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanMatch reads one matches row (without the run_id column) back into a
// Match.
func scanMatch(row rowScanner) (model.Match, error) {
	var (
		m         model.Match
		dateFixed string
		division  string
		line      sql.NullInt64
		homeGames sql.NullInt64
		awayGames sql.NullInt64
	)

	err := row.Scan(
		&m.Season, &m.Division, &m.Date, &m.HomeTeam, &m.AwayTeam,
		&m.LineRaw, &m.Score, &m.Defaulted,
		&m.HomePlayer1, &m.HomeID1, &m.HomePlayer2, &m.HomeID2,
		&m.AwayPlayer1, &m.AwayID1, &m.AwayPlayer2, &m.AwayID2,
		&homeGames, &awayGames,
		&dateFixed, &division, &line,
		&m.TeamMatchID, &m.TeamMatchLabel,
		&m.MatchID, &m.MatchLabel, &m.LineLabel,
	)
	if err != nil {
		return model.Match{}, eris.Wrap(err, "store: scan match")
	}

	if err := m.DateFixed.UnmarshalText([]byte(dateFixed)); err != nil {
		return model.Match{}, eris.Wrap(err, "store: decode date_fixed")
	}
	m.DivisionLevel = model.DivisionLevel(division)
	if line.Valid {
		m.LineValidated = model.Line(line.Int64)
	}
	if homeGames.Valid {
		v := int(homeGames.Int64)
		m.HomeGames = &v
	}
	if awayGames.Valid {
		v := int(awayGames.Int64)
		m.AwayGames = &v
	}
	return m, nil
}

// buildListQuery assembles the ListMatches SQL for either placeholder
// style: "?" for SQLite, "$" for Postgres.
func buildListQuery(f MatchFilter, placeholder string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	ph := func() string {
		if placeholder == "?" {
			return "?"
		}
		return "$" + strconv.Itoa(len(args))
	}

	if f.RunID != "" {
		args = append(args, f.RunID)
		conds = append(conds, "run_id = "+ph())
	}
	if f.Division != "" {
		args = append(args, f.Division)
		conds = append(conds, "division_level = "+ph())
	}
	if f.Team != "" {
		args = append(args, f.Team)
		first := ph()
		args = append(args, f.Team)
		conds = append(conds, fmt.Sprintf("(home_team = %s OR away_team = %s)", first, ph()))
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(matchColumns[1:], ", "))
	b.WriteString(" FROM matches")
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY match_id")
	if f.Limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(f.Limit))
	}
	return b.String(), args
}
