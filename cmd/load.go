package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/icmixed/league-cli/internal/clean"
	"github.com/icmixed/league-cli/internal/fetcher"
	"github.com/icmixed/league-cli/internal/store"
)

var loadCSVPath string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a cleaned CSV into the store",
	Long:  "Reads a cleaned match CSV, recomputes its validation report, and persists the batch as an ingest run.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if loadCSVPath == "" {
			return eris.New("a cleaned CSV path is required (--csv)")
		}

		rows, err := fetcher.ReadMatchesFile(loadCSVPath)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return eris.Errorf("no rows in %s", loadCSVPath)
		}

		// The report is recomputed so the stored run reflects this file,
		// not whatever was printed when it was cleaned.
		report := clean.BuildReport(rows)

		st, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return err
		}

		run, err := st.CreateRun(ctx, loadCSVPath, report)
		if err != nil {
			return err
		}
		if err := st.InsertMatches(ctx, run.ID, rows); err != nil {
			return err
		}

		zap.L().Info("load complete",
			zap.String("run_id", run.ID),
			zap.String("csv", loadCSVPath),
			zap.Int("rows", len(rows)),
			zap.Bool("clean", report.Clean()))
		return nil
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadCSVPath, "csv", "", "path to cleaned CSV (required)")
	_ = loadCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(loadCmd)
}
