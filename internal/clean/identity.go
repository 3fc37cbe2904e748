package clean

import (
	"fmt"
	"slices"
	"strings"

	"github.com/icmixed/league-cli/internal/model"
)

// Identity assignment is sort-then-dedupe: rows are sorted by the grouping
// key, distinct keys collect sequential IDs starting at 1 in
// first-appearance order, and each row looks its ID up from the key map.
// Both sorts use the division text as written rather than the classified
// tier, so rows that failed classification still group deterministically.

// lineSortOrd places invalid lines after the six real slots when sorting.
func lineSortOrd(l model.Line) int {
	if l.Valid() {
		return int(l)
	}
	return 7
}

func compareTeamKey(a, b model.Match) int {
	if c := a.DateFixed.Compare(b.DateFixed); c != 0 {
		return c
	}
	if c := strings.Compare(a.Division, b.Division); c != 0 {
		return c
	}
	if c := strings.Compare(a.HomeTeam, b.HomeTeam); c != 0 {
		return c
	}
	return strings.Compare(a.AwayTeam, b.AwayTeam)
}

func compareMatchKey(a, b model.Match) int {
	if c := compareTeamKey(a, b); c != 0 {
		return c
	}
	if c := lineSortOrd(a.LineValidated) - lineSortOrd(b.LineValidated); c != 0 {
		return c
	}
	if c := strings.Compare(a.HomePlayer1, b.HomePlayer1); c != 0 {
		return c
	}
	if c := strings.Compare(a.HomePlayer2, b.HomePlayer2); c != 0 {
		return c
	}
	if c := strings.Compare(a.AwayPlayer1, b.AwayPlayer1); c != 0 {
		return c
	}
	return strings.Compare(a.AwayPlayer2, b.AwayPlayer2)
}

// teamMatchLabel formats the human-readable fixture label:
// "YYYY-MM-DD <division> <home> vs <away>".
func teamMatchLabel(m model.Match) string {
	return fmt.Sprintf("%s %s %s vs %s",
		m.DateFixed.DateString(), m.Division, m.HomeTeam, m.AwayTeam)
}

// AssignTeamMatchIDs groups rows into team matches and assigns each
// distinct (date, division, home, away) tuple a sequential ID starting at
// 1. Rows with unparseable dates or unclassified divisions still
// participate using their value as written; grouping never fails. The
// returned slice is in sorted key order.
func AssignTeamMatchIDs(rows []model.Match) []model.Match {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, compareTeamKey)

	ids := make(map[model.TeamMatchKey]int)
	for i, r := range out {
		key := r.TeamMatchKey()
		id, ok := ids[key]
		if !ok {
			id = len(ids) + 1
			ids[key] = id
		}
		out[i].TeamMatchID = id
		out[i].TeamMatchLabel = teamMatchLabel(r)
	}
	return out
}

// AssignMatchIDs assigns each distinct 9-tuple (team match key, line, four
// players) a sequential individual-match ID starting at 1, plus the line
// category label and the full match label. A line outside 1-6 yields an
// empty category name but still gets an ID.
func AssignMatchIDs(rows []model.Match) []model.Match {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, compareMatchKey)

	ids := make(map[model.MatchKey]int)
	for i, r := range out {
		key := r.MatchKey()
		id, ok := ids[key]
		if !ok {
			id = len(ids) + 1
			ids[key] = id
		}
		out[i].MatchID = id
		out[i].LineLabel = r.LineValidated.Name()
		out[i].MatchLabel = fmt.Sprintf("%s (%s - %s) - %s & %s vs %s & %s",
			teamMatchLabel(r),
			key.Line, out[i].LineLabel,
			r.HomePlayer1, r.HomePlayer2,
			r.AwayPlayer1, r.AwayPlayer2)
	}
	return out
}
