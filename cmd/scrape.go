package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/icmixed/league-cli/internal/scrape"
)

var (
	scrapeManifest string
	scrapeOutDir   string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape division results pages into raw CSVs",
	Long:  "Reads the seasons manifest, fetches each division's matches page, extracts the reported lines of play, and writes one raw CSV per division.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		manifestPath := scrapeManifest
		if manifestPath == "" {
			manifestPath = cfg.Scrape.Manifest
		}
		outDir := scrapeOutDir
		if outDir == "" {
			outDir = cfg.Scrape.OutDir
		}

		manifest, err := scrape.LoadManifest(manifestPath)
		if err != nil {
			return err
		}

		runner := &scrape.Runner{
			Fetcher:       scrape.NewFetcher(cfg.Scrape.RatePerSec, cfg.Scrape.Burst, cfg.Scrape.UserAgent),
			OutDir:        outDir,
			MaxConcurrent: cfg.Scrape.MaxConcurrent,
		}
		if err := runner.Run(ctx, manifest); err != nil {
			return err
		}

		zap.L().Info("scrape complete",
			zap.String("manifest", manifestPath),
			zap.String("out_dir", outDir))
		return nil
	},
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeManifest, "manifest", "", "seasons manifest file (default from config)")
	scrapeCmd.Flags().StringVar(&scrapeOutDir, "out-dir", "", "directory for raw CSVs (default from config)")
	rootCmd.AddCommand(scrapeCmd)
}
