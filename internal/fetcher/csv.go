// Package fetcher reads and writes the match CSV files that connect the
// scraper, the cleaning pipeline, and the store.
package fetcher

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/icmixed/league-cli/internal/model"
)

// maxConcurrentReads bounds parallel file parsing during discovery loads.
const maxConcurrentReads = 4

// ReadMatches decodes match rows from one CSV stream. Unknown columns are
// ignored so older season files with extra fields still load.
func ReadMatches(r io.Reader) ([]model.Match, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, eris.Wrap(err, "fetcher: csv header")
	}
	dec.DisallowMissingColumns = false

	var rows []model.Match
	for {
		var m model.Match
		if err := dec.Decode(&m); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrap(err, "fetcher: decode row")
		}
		rows = append(rows, m)
	}
	return rows, nil
}

// ReadMatchesFile loads one CSV file of match rows.
func ReadMatchesFile(path string) ([]model.Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open %s", path)
	}
	defer f.Close()
	return ReadMatches(f)
}

// Discover expands a glob pattern into the raw match files for a batch,
// sorted by path so concatenation order is deterministic.
func Discover(pattern string) ([]string, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: glob %s", pattern)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadAll reads every file and concatenates the rows in path order. Files
// parse concurrently; the concatenation order stays deterministic because
// results are stitched back by index.
func LoadAll(ctx context.Context, paths []string) ([]model.Match, error) {
	perFile := make([][]model.Match, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return eris.Wrap(err, "fetcher: load cancelled")
			}
			rows, err := ReadMatchesFile(path)
			if err != nil {
				return err
			}
			zap.L().Debug("loaded match file",
				zap.String("path", path),
				zap.Int("rows", len(rows)))
			perFile[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.Match
	for _, rows := range perFile {
		all = append(all, rows...)
	}
	return all, nil
}

// WriteMatches encodes rows to CSV with the stable column set.
func WriteMatches(w io.Writer, rows []model.Match) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	for _, m := range rows {
		if err := enc.Encode(m); err != nil {
			return eris.Wrap(err, "fetcher: encode row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "fetcher: flush csv")
}

// WriteMatchesFile writes rows to a CSV file, creating parent directories.
func WriteMatchesFile(path string, rows []model.Match) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "fetcher: mkdir for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "fetcher: create %s", path)
	}
	if err := WriteMatches(f, rows); err != nil {
		f.Close()
		return err
	}
	return eris.Wrapf(f.Close(), "fetcher: close %s", path)
}

// WritePlayersFile writes roster rows scraped from team pages.
func WritePlayersFile(path string, players []model.Player) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "fetcher: mkdir for %s", path)
	}
	b, err := csvutil.Marshal(players)
	if err != nil {
		return eris.Wrap(err, "fetcher: marshal roster")
	}
	return eris.Wrapf(os.WriteFile(path, b, 0o644), "fetcher: write %s", path)
}
