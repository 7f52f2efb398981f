package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "casm83",
	Short:         "CASM-83 R2014 vocational interest questionnaire",
	Long:          "casm83 serves the CASM-83 R2014 questionnaire over HTTP, scores answer sheets against the per-sex norm tables and exports stored sessions.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("storage", "", "Session storage: postgres or memory (overrides STORAGE)")
	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL DSN (overrides DATABASE_URL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(flushCacheCmd)
	rootCmd.AddCommand(versionCmd)
}
