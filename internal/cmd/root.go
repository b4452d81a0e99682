package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool
var noColor bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "demogen",
	Short: "Synthetic restaurant operations data generator",
	Long: `A deterministic restaurant demo-data generator.

This tool generates synthetic but realistic restaurant operations data:
intraday sales buckets, daily labor summaries, menu item mix, and
ingredient inventory, for any number of locations over a configurable
horizon. The same location identity always produces the same data.

Phase 1 (generate): Write CSV datasets for each table
Phase 2 (load): Bulk-load the CSVs into MySQL/MariaDB

Tunable parameters are in internal/config/defaults.go - edit and recompile,
or override via flags and an optional config file.

Example usage:
  demogen generate --locations 25 --days 365 --output ./data
  demogen load --db "user:pass@tcp(host:3306)/demo" --input ./data`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and animations")

	// Silence usage on error - we'll print our own messages
	rootCmd.SilenceUsage = true

	// Set version template
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Verbose returns whether verbose mode is enabled
func Verbose() bool {
	return verbose
}

// Exit with code
func Exit(code int) {
	os.Exit(code)
}
