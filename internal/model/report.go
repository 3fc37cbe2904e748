package model

// Report summarizes the anomalies found while cleaning one batch of rows.
// It is computed read-only after the derived columns exist and never feeds
// back into the pipeline.
type Report struct {
	Rows int `json:"rows"`

	// Dates.
	BadDates    int            `json:"bad_dates"`
	AllDatesBad bool           `json:"all_dates_bad"`
	MonthCounts map[string]int `json:"month_counts,omitempty"` // "YYYY-MM" -> rows

	// Divisions and lines, keyed by the offending raw value.
	BadDivisions map[string]int `json:"bad_divisions,omitempty"`
	BadLines     map[string]int `json:"bad_lines,omitempty"`

	// Fixtures whose line sets have duplicates or out-of-range values.
	TeamMatches    int   `json:"team_matches"`
	BadTeamMatches []int `json:"bad_team_matches,omitempty"`

	// Individual-match identity: Rows must equal DistinctMatchIDs.
	DistinctMatchIDs int `json:"distinct_match_ids"`
}

// MatchIDCollision reports whether two rows collapsed onto one match ID,
// which indicates duplicate or malformed source data.
func (r Report) MatchIDCollision() bool {
	return r.Rows != r.DistinctMatchIDs
}

// Clean reports whether the batch came through without anomalies.
func (r Report) Clean() bool {
	return r.BadDates == 0 &&
		len(r.BadDivisions) == 0 &&
		len(r.BadLines) == 0 &&
		len(r.BadTeamMatches) == 0 &&
		!r.MatchIDCollision()
}
