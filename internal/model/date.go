package model

import (
	"time"
)

// MatchDate is a normalized match date. The zero value is unparseable;
// unparseable is a first-class outcome, never an error.
type MatchDate struct {
	Time  time.Time
	Valid bool
}

// NewMatchDate wraps a parsed timestamp.
func NewMatchDate(t time.Time) MatchDate {
	return MatchDate{Time: t, Valid: true}
}

// Compare orders dates ascending with unparseable dates sorted last,
// matching how the source data orders missing timestamps.
func (d MatchDate) Compare(o MatchDate) int {
	switch {
	case d.Valid && o.Valid:
		return d.Time.Compare(o.Time)
	case d.Valid:
		return -1
	case o.Valid:
		return 1
	default:
		return 0
	}
}

// Key returns the full timestamp string used in grouping keys.
// All unparseable dates share one key so they group together as written.
func (d MatchDate) Key() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02 15:04:05")
}

// DateString returns the YYYY-MM-DD form used in labels, or "" when
// unparseable.
func (d MatchDate) DateString() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// MarshalText writes the date for CSV output: date only when the time of
// day is midnight, full timestamp otherwise, empty when unparseable.
func (d MatchDate) MarshalText() ([]byte, error) {
	if !d.Valid {
		return nil, nil
	}
	h, m, s := d.Time.Clock()
	if h == 0 && m == 0 && s == 0 {
		return []byte(d.Time.Format("2006-01-02")), nil
	}
	return []byte(d.Time.Format("2006-01-02 15:04:05")), nil
}

// UnmarshalText reads either of the two forms MarshalText emits. Anything
// else leaves the date unparseable rather than returning an error, so a
// cleaned CSV can be re-read without aborting on a blank column.
func (d *MatchDate) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		*d = MatchDate{}
		return nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewMatchDate(t)
			return nil
		}
	}
	*d = MatchDate{}
	return nil
}
