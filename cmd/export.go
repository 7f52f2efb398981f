package cmd

import (
	"fmt"
	"os"

	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"github.com/Mallqui258/Automatizacion2/internal/services"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored sessions with answers and scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		app, err := newApplication(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		file, err := app.services.Export().ExportSessions(cmd.Context(), format, repositories.SessionFilters{})
		if err != nil {
			return err
		}

		if out == "" {
			out = file.Name
		}
		if out == "-" {
			_, err := cmd.OutOrStdout().Write(file.Data)
			return err
		}
		if err := os.WriteFile(out, file.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(file.Data))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", services.ExportFormatXLSX, "Export format: xlsx or csv")
	exportCmd.Flags().String("out", "", "Output file (- for stdout; defaults to a timestamped name)")
}
