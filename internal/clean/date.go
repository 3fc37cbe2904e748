// Package clean implements the identity and validation pipeline: date
// normalization, division classification, line validation, and
// deterministic team-match and individual-match ID assignment.
package clean

import (
	"regexp"
	"strings"
	"time"

	"github.com/icmixed/league-cli/internal/model"
)

// dateLayouts lists the formats seen across seasons of the results portal,
// tried in order. ISO first, then slashed, US, and long forms, each with
// optional time-of-day variants.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
	"2006/01/02",
	"2006/01/02 15:04",
	"2006/01/02 3:04 PM",
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	"January 2, 2006",
	"January 2, 2006 3:04 PM",
	"January 2 2006",
	"January 2 2006 3:04 PM",
	"Jan 2, 2006",
	"Jan 2, 2006 3:04 PM",
	"Jan 2 2006",
	"Jan 2 2006 3:04 PM",
	"Monday, January 2, 2006",
	"Monday, January 2 2006",
}

// ordinalSuffix matches day-of-month ordinals like "12th" or "1st".
var ordinalSuffix = regexp.MustCompile(`\b(\d{1,2})(st|nd|rd|th)\b`)

// whitespaceRun collapses repeated spaces left by scraped markup.
var whitespaceRun = regexp.MustCompile(`\s+`)

// FixDate coerces a raw date value to a MatchDate. A missing or
// unrecognized value comes back unparseable; parsing never fails the run.
func FixDate(value string) model.MatchDate {
	s := strings.TrimSpace(value)
	if s == "" {
		return model.MatchDate{}
	}
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = ordinalSuffix.ReplaceAllString(s, "$1")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.NewMatchDate(t)
		}
	}
	return model.MatchDate{}
}

// FixDates sets DateFixed on every row, returning a new slice.
func FixDates(rows []model.Match) []model.Match {
	out := make([]model.Match, len(rows))
	for i, r := range rows {
		r.DateFixed = FixDate(r.Date)
		out[i] = r
	}
	return out
}
