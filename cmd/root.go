package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/icmixed/league-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "league-cli",
	Short: "Tennis league results pipeline",
	Long:  "Scrapes league results pages, cleans and validates the match data, assigns stable team-match and individual-match IDs, and loads the result into a store.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
