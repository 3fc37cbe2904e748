package clean

import (
	"strings"

	"github.com/icmixed/league-cli/internal/model"
)

// ParseDivisionLevel maps a free-text division name to its tier. Division
// names carry geographic suffixes ("A - West", "Majors - Central"); only
// the leading token is meaningful. The prefix match is case-sensitive and
// checked in priority order so "Major"/"Majors" never falls through to the
// bare "A" check.
func ParseDivisionLevel(name string) model.DivisionLevel {
	s := strings.TrimSpace(name)
	switch {
	case strings.HasPrefix(s, "Major"):
		return model.DivisionMajor
	case strings.HasPrefix(s, "A"):
		return model.DivisionA
	case strings.HasPrefix(s, "B"):
		return model.DivisionB
	case strings.HasPrefix(s, "C"):
		return model.DivisionC
	default:
		return model.DivisionUnclassified
	}
}

// ClassifyDivisions sets DivisionLevel on every row, returning a new slice.
func ClassifyDivisions(rows []model.Match) []model.Match {
	out := make([]model.Match, len(rows))
	for i, r := range rows {
		r.DivisionLevel = ParseDivisionLevel(r.Division)
		out[i] = r
	}
	return out
}
