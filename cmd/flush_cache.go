package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flushCacheCmd = &cobra.Command{
	Use:   "flush-cache",
	Short: "Drop every cached profile",
	Long:  "Run after changing the norm tables or the occupation catalog so completed sessions are rescored on their next read.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		app, err := newApplication(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.services.Result().FlushProfiles(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "profile cache flushed")
		return nil
	},
}
