package clean

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/icmixed/league-cli/internal/model"
)

// BuildReport computes the validation summary over rows that already carry
// their derived columns. It only reads; anomalies are reported, never
// repaired or dropped.
func BuildReport(rows []model.Match) model.Report {
	r := model.Report{
		Rows:         len(rows),
		MonthCounts:  make(map[string]int),
		BadDivisions: make(map[string]int),
		BadLines:     make(map[string]int),
	}

	for _, m := range rows {
		if !m.DateFixed.Valid {
			r.BadDates++
		} else {
			r.MonthCounts[m.DateFixed.Time.Format("2006-01")]++
		}
		if !m.DivisionLevel.Classified() {
			r.BadDivisions[m.Division]++
		}
		if !m.LineValidated.Valid() {
			r.BadLines[m.LineRaw]++
		}
	}
	r.AllDatesBad = len(rows) > 0 && r.BadDates == len(rows)

	// Fixtures whose line sets have duplicates or out-of-range values.
	byTeam := make(map[int][]model.Line)
	for _, m := range rows {
		byTeam[m.TeamMatchID] = append(byTeam[m.TeamMatchID], m.LineValidated)
	}
	r.TeamMatches = len(byTeam)
	for id, lines := range byTeam {
		if badLineSet(lines) {
			r.BadTeamMatches = append(r.BadTeamMatches, id)
		}
	}
	slices.Sort(r.BadTeamMatches)

	// match_id must be injective over rows.
	distinct := make(map[int]struct{}, len(rows))
	for _, m := range rows {
		distinct[m.MatchID] = struct{}{}
	}
	r.DistinctMatchIDs = len(distinct)

	return r
}

// badLineSet reports whether a fixture's lines violate the invariant that
// validated lines are unique and drawn from 1-6. A row whose line failed
// validation counts as a violation too.
func badLineSet(lines []model.Line) bool {
	seen := make(map[model.Line]struct{}, len(lines))
	for _, l := range lines {
		if !l.Valid() {
			return true
		}
		if _, dup := seen[l]; dup {
			return true
		}
		seen[l] = struct{}{}
	}
	return false
}

// FormatReport renders the report for the CLI.
func FormatReport(r model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Cleaning Report\n")
	fmt.Fprintf(&b, "Rows: %d\n\n", r.Rows)

	b.WriteString("## Dates\n")
	if r.AllDatesBad {
		b.WriteString("ALL dates failed to parse - check the input data\n")
	} else if r.BadDates > 0 {
		fmt.Fprintf(&b, "Bad dates: %d\n", r.BadDates)
	} else {
		b.WriteString("All dates parsed.\n")
	}
	for _, ym := range sortedKeys(r.MonthCounts) {
		fmt.Fprintf(&b, "- %s: %d matches\n", ym, r.MonthCounts[ym])
	}
	b.WriteString("\n")

	b.WriteString("## Divisions\n")
	if len(r.BadDivisions) == 0 {
		b.WriteString("All divisions fit the expected schema (Major, A, B, C).\n")
	} else {
		b.WriteString("Divisions outside the expected schema:\n")
		for _, name := range sortedKeys(r.BadDivisions) {
			fmt.Fprintf(&b, "- %q: %d rows\n", name, r.BadDivisions[name])
		}
	}
	b.WriteString("\n")

	b.WriteString("## Lines\n")
	if len(r.BadLines) == 0 {
		b.WriteString("All line values are valid (1-6).\n")
	} else {
		b.WriteString("Invalid line values:\n")
		for _, v := range sortedKeys(r.BadLines) {
			fmt.Fprintf(&b, "- %q: %d rows\n", v, r.BadLines[v])
		}
	}
	b.WriteString("\n")

	b.WriteString("## Identity\n")
	fmt.Fprintf(&b, "Team matches: %d\n", r.TeamMatches)
	if len(r.BadTeamMatches) > 0 {
		fmt.Fprintf(&b, "Team matches with invalid or duplicate lines: %v\n", r.BadTeamMatches)
	} else {
		b.WriteString("All team matches have valid, distinct lines.\n")
	}
	if r.MatchIDCollision() {
		fmt.Fprintf(&b, "Match ID collision: %d rows but %d distinct match IDs\n",
			r.Rows, r.DistinctMatchIDs)
	} else {
		fmt.Fprintf(&b, "All %d individual matches have unique match IDs.\n", r.Rows)
	}

	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
