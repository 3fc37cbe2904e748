package clean

import (
	"strconv"
	"strings"

	"github.com/icmixed/league-cli/internal/model"
)

// ValidateLine restricts a raw line value to the integer range 1-6. Out of
// range is rejected outright, never rounded or clamped.
func ValidateLine(raw string) model.Line {
	s := strings.TrimSpace(raw)
	if s == "" {
		return model.LineInvalid
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 6 {
		return model.LineInvalid
	}
	return model.Line(n)
}

// ValidateLines sets LineValidated on every row, returning a new slice.
func ValidateLines(rows []model.Match) []model.Match {
	out := make([]model.Match, len(rows))
	for i, r := range rows {
		r.LineValidated = ValidateLine(r.LineRaw)
		out[i] = r
	}
	return out
}
