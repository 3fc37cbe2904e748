package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/icmixed/league-cli/internal/clean"
	"github.com/icmixed/league-cli/internal/fetcher"
)

var (
	cleanInputGlob string
	cleanOutput    string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean and validate raw match CSVs",
	Long:  "Discovers raw match CSVs, normalizes dates, classifies divisions, validates lines, assigns team-match and individual-match IDs, writes the cleaned CSV, and prints the validation report.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		glob := cleanInputGlob
		if glob == "" {
			glob = cfg.Clean.InputGlob
		}
		output := cleanOutput
		if output == "" {
			output = cfg.Clean.Output
		}

		paths, err := fetcher.Discover(glob)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return eris.Errorf("no match files found for %q", glob)
		}

		rows, err := fetcher.LoadAll(ctx, paths)
		if err != nil {
			return err
		}
		zap.L().Info("loaded raw matches",
			zap.Int("files", len(paths)),
			zap.Int("rows", len(rows)))

		cleaned, report := clean.Run(rows)

		if err := fetcher.WriteMatchesFile(output, cleaned); err != nil {
			return err
		}
		zap.L().Info("wrote cleaned matches",
			zap.String("path", output),
			zap.Int("rows", len(cleaned)))

		cmd.Println(clean.FormatReport(report))
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanInputGlob, "input", "", "glob of raw match CSVs (default from config)")
	cleanCmd.Flags().StringVar(&cleanOutput, "output", "", "path for the cleaned CSV (default from config)")
	rootCmd.AddCommand(cleanCmd)
}
