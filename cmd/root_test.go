//go:build !integration

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"scrape", "clean", "load", "serve"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "league-cli", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestCleanCommand_Flags(t *testing.T) {
	require.NotNil(t, cleanCmd.Flags().Lookup("input"))
	require.NotNil(t, cleanCmd.Flags().Lookup("output"))
}

func TestScrapeCommand_Flags(t *testing.T) {
	require.NotNil(t, scrapeCmd.Flags().Lookup("manifest"))
	require.NotNil(t, scrapeCmd.Flags().Lookup("out-dir"))
}

func TestLoadCommand_Flags(t *testing.T) {
	flag := loadCmd.Flags().Lookup("csv")
	require.NotNil(t, flag, "load command should have --csv flag")
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}
