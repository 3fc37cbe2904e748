package clean

import (
	"regexp"
	"strconv"
	"strings"
)

// TiebreakType classifies how a set was decided.
type TiebreakType string

const (
	TiebreakNone    TiebreakType = "none"
	TiebreakRegular TiebreakType = "regular" // 7-6 or 6-7
	TiebreakSuper   TiebreakType = "super"   // 1-0 or 0-1 placeholder set
)

// SetScore is one parsed set from a raw score string.
type SetScore struct {
	HomeGames int          `json:"home_games"`
	AwayGames int          `json:"away_games"`
	HomeTB    *int         `json:"home_tb_points,omitempty"`
	AwayTB    *int         `json:"away_tb_points,omitempty"`
	Tiebreak  TiebreakType `json:"tiebreak_type"`
}

var (
	bracketed    = regexp.MustCompile(`\[.*?\]`)
	tiebreakPts  = regexp.MustCompile(`\[(\d+)[^\d]+(\d+)\]`)
	gamePair     = regexp.MustCompile(`^(\d+)[^\d]+(\d+)`)
	suspectScore = regexp.MustCompile(`\b(1-1|0-0)\s*\[\d+[^\d]+\d+\]`)
)

// ParseScore parses a raw score string like "6-4, 6-7 [4-7], 10-8" into
// per-set scores. Sets that do not parse are skipped, never fatal.
func ParseScore(score string) []SetScore {
	if strings.TrimSpace(score) == "" {
		return nil
	}

	var sets []SetScore
	for _, raw := range strings.Split(score, ",") {
		raw = strings.TrimSpace(raw)

		var homeTB, awayTB *int
		if m := tiebreakPts.FindStringSubmatch(raw); m != nil {
			h, _ := strconv.Atoi(m[1])
			a, _ := strconv.Atoi(m[2])
			homeTB, awayTB = &h, &a
		}

		main := strings.TrimSpace(bracketed.ReplaceAllString(raw, ""))
		m := gamePair.FindStringSubmatch(main)
		if m == nil {
			continue
		}
		home, _ := strconv.Atoi(m[1])
		away, _ := strconv.Atoi(m[2])

		tb := TiebreakNone
		switch {
		case (home == 7 && away == 6) || (home == 6 && away == 7):
			tb = TiebreakRegular
		case (home == 1 && away == 0) || (home == 0 && away == 1):
			tb = TiebreakSuper
		}

		sets = append(sets, SetScore{
			HomeGames: home,
			AwayGames: away,
			HomeTB:    homeTB,
			AwayTB:    awayTB,
			Tiebreak:  tb,
		})
	}
	return sets
}

// SuspiciousScore flags score strings like "1-1 [10-8]" or "0-0 [7-5]"
// where the games make no sense against the recorded tiebreak.
func SuspiciousScore(score string) bool {
	return suspectScore.MatchString(score)
}

// CountGames totals home and away games across all sets, ignoring
// bracketed tiebreak points. Unparseable sets contribute nothing.
func CountGames(score string) (home, away int) {
	clean := bracketed.ReplaceAllString(score, "")
	for _, set := range strings.Split(clean, ",") {
		set = strings.TrimSpace(set)
		h, a, ok := strings.Cut(set, "-")
		if !ok {
			continue
		}
		hg, err1 := strconv.Atoi(strings.TrimSpace(h))
		ag, err2 := strconv.Atoi(strings.TrimSpace(a))
		if err1 != nil || err2 != nil {
			continue
		}
		home += hg
		away += ag
	}
	return home, away
}
