package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Mallqui258/Automatizacion2/internal/repositories/memory"
	"github.com/Mallqui258/Automatizacion2/internal/services"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answer sheet and print the profile as JSON",
	Long: `Score reads a JSON object mapping question number to the marked options,
for example {"1": ["A"], "2": ["A", "B"], "3": []}, from --answers or stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sex, _ := cmd.Flags().GetString("sex")
		path, _ := cmd.Flags().GetString("answers")

		var in io.Reader = cmd.InOrStdin()
		if path != "" && path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		var answers map[int][]string
		if err := json.NewDecoder(in).Decode(&answers); err != nil {
			return fmt.Errorf("failed to read answers: %w", err)
		}

		// Scoring needs no storage; an empty in-memory backend satisfies the manager.
		manager := services.NewServiceManager(services.Dependencies{
			Repository: memory.NewRepository(),
			Logger:     discardSlog(),
		})
		profile, err := manager.Result().ScoreAnswers(cmd.Context(), &services.ScoreRequest{Sex: sex, Answers: answers})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	},
}

func init() {
	scoreCmd.Flags().String("sex", "", "Respondent sex: masculino or femenino")
	scoreCmd.Flags().String("answers", "-", "Path to the answers JSON file (- for stdin)")
	_ = scoreCmd.MarkFlagRequired("sex")
}
