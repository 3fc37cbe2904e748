// Package scrape extracts match and roster rows from league results pages.
// It parses already-fetched HTML; browser automation stays outside this
// module.
package scrape

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/icmixed/league-cli/internal/clean"
	"github.com/icmixed/league-cli/internal/model"
)

// ExtractMatches pulls every reported line of play from a division results
// page. Each fixture block yields its date and team names; the result
// blocks under it are numbered as lines 1..N in page order. Blocks with no
// score and no players are skipped without advancing the line counter.
func ExtractMatches(r io.Reader, season, division string) ([]model.Match, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: parse results page")
	}

	var matches []model.Match
	doc.Find("div.match_results_table").Each(func(_ int, fixture *goquery.Selection) {
		date := strings.TrimSpace(fixture.Find("div.match_rest").First().Text())
		homeTeam := strings.TrimSpace(fixture.Find("div.team_name a").First().Text())
		awayTeam := strings.TrimSpace(fixture.Find("div.team_name2 a").First().Text())

		line := 1
		blocks := fixture.Find("div.match_results_content")
		blocks.Each(func(i int, block *goquery.Selection) {
			if i == 0 {
				return // header block, no result
			}
			m, ok := extractLine(block, line)
			if !ok {
				return
			}
			m.Season = season
			m.Division = division
			m.Date = date
			m.HomeTeam = homeTeam
			m.AwayTeam = awayTeam
			matches = append(matches, m)
			line++
		})
	})

	zap.L().Debug("extracted matches",
		zap.String("division", division),
		zap.Int("matches", len(matches)))
	return matches, nil
}

// extractLine reads one result block. ok is false for empty placeholder
// blocks (no score, no players).
func extractLine(block *goquery.Selection, line int) (model.Match, bool) {
	homeAnchors := block.Find("div.team_name a")
	awayAnchors := block.Find("div.team_name2 a")

	homeNames, homeIDs := playerList(homeAnchors)
	awayNames, awayIDs := playerList(awayAnchors)

	score := strings.TrimSpace(block.Find("div.match_rest").First().Text())
	if score == "" && len(homeNames) == 0 && len(awayNames) == 0 {
		return model.Match{}, false
	}

	homeText := block.Find("div.team_name").First().Text()
	awayText := block.Find("div.team_name2").First().Text()
	defaulted := containsForfeit(homeText) || containsForfeit(awayText)

	m := model.Match{
		LineRaw:   strconv.Itoa(line),
		Score:     score,
		Defaulted: defaulted,
	}

	if len(homeNames) == 2 {
		m.HomePlayer1, m.HomePlayer2 = homeNames[0], homeNames[1]
		m.HomeID1, m.HomeID2 = homeIDs[0], homeIDs[1]
	}
	if len(awayNames) == 2 {
		m.AwayPlayer1, m.AwayPlayer2 = awayNames[0], awayNames[1]
		m.AwayID1, m.AwayID2 = awayIDs[0], awayIDs[1]
	}

	// Games totals only make sense for a played doubles match.
	if !defaulted && len(homeNames) == 2 && len(awayNames) == 2 {
		home, away := clean.CountGames(score)
		m.HomeGames = &home
		m.AwayGames = &away
	}

	return m, true
}

func playerList(anchors *goquery.Selection) (names, ids []string) {
	anchors.Each(func(_ int, a *goquery.Selection) {
		names = append(names, strings.TrimSpace(a.Text()))
		href, _ := a.Attr("href")
		ids = append(ids, DecodePlayerID(href))
	})
	return names, ids
}

func containsForfeit(s string) bool {
	return strings.Contains(s, "By Default") || strings.Contains(s, "By Forfeit")
}
