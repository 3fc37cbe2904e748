package scrape

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/icmixed/league-cli/internal/model"
)

// ExtractRoster pulls roster entries from a team page. The roster table
// splits into Captains and Players sections; each player row carries a
// profile link with the encoded ID and an optional suffix after the name.
func ExtractRoster(r io.Reader, teamName, teamID string) ([]model.Player, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: parse roster page")
	}

	division := rosterDivision(doc)

	table := doc.Find("table.team_roster_table").First()
	if table.Length() == 0 {
		return nil, nil
	}

	var players []model.Player
	section := ""
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		header := row.Find("th.player_col")
		if header.Length() > 0 {
			switch {
			case strings.Contains(header.Text(), "Captains"):
				section = "Captain"
			case strings.Contains(header.Text(), "Players"):
				section = "Player"
			}
			return
		}

		anchor := row.Find("a[href]").First()
		if anchor.Length() == 0 {
			return
		}

		name := strings.TrimSpace(anchor.Text())
		fullText := strings.TrimSpace(strings.Join(strings.Fields(row.Text()), " "))
		suffix := strings.TrimSpace(strings.Replace(fullText, name, "", 1))
		href, _ := anchor.Attr("href")

		players = append(players, model.Player{
			Division: division,
			Team:     teamName,
			TeamID:   teamID,
			Name:     name,
			Suffix:   suffix,
			ID:       DecodePlayerID(href),
			Role:     section,
		})
	})

	return players, nil
}

// rosterDivision reads the division name from the team page header,
// trimming the trailing "Standings" portion.
func rosterDivision(doc *goquery.Document) string {
	header := doc.Find("div.shader.team_nav.team_nav2 div").First()
	if header.Length() == 0 {
		return ""
	}
	raw := strings.TrimSpace(header.Text())
	division, _, _ := strings.Cut(raw, "Standings")
	return strings.TrimSpace(division)
}
