package scrape

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/icmixed/league-cli/internal/fetcher"
)

// Runner scrapes every division listed in a manifest and writes one raw
// CSV per division.
type Runner struct {
	Fetcher       *Fetcher
	OutDir        string
	MaxConcurrent int
}

// Run fetches and extracts all divisions. Division pages are independent,
// so they fan out under an errgroup; a division with no matches logs a
// warning and produces no file rather than failing the batch.
func (r *Runner) Run(ctx context.Context, m *Manifest) error {
	limit := r.MaxConcurrent
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, season := range m.Seasons {
		for _, division := range season.Divisions {
			g.Go(func() error {
				return r.scrapeDivision(ctx, season.Name, division)
			})
		}
	}
	return g.Wait()
}

func (r *Runner) scrapeDivision(ctx context.Context, season string, d Division) error {
	body, err := r.Fetcher.Get(ctx, d.URL)
	if err != nil {
		return err
	}

	matches, err := ExtractMatches(bytes.NewReader(body), season, d.Name)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		zap.L().Warn("no matches found for division",
			zap.String("season", season),
			zap.String("division", d.Name))
		return nil
	}

	path := filepath.Join(r.OutDir,
		fmt.Sprintf("ic_mixed_matches_%s_%s.csv", CleanFilename(season), CleanFilename(d.Name)))
	if err := fetcher.WriteMatchesFile(path, matches); err != nil {
		return err
	}

	zap.L().Info("scraped division",
		zap.String("season", season),
		zap.String("division", d.Name),
		zap.Int("matches", len(matches)),
		zap.String("path", path))
	return nil
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[^\w\-]`)
	dashRun             = regexp.MustCompile(`-{2,}`)
)

// CleanFilename sanitizes a season or division name for use in a filename.
func CleanFilename(s string) string {
	s = unsafeFilenameChars.ReplaceAllString(s, "-")
	s = dashRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
