package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/services"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert completed sessions with random answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		perSex, _ := cmd.Flags().GetInt("per-sex")
		seed, _ := cmd.Flags().GetInt64("seed")
		if perSex < 1 {
			return fmt.Errorf("--per-sex must be at least 1")
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		app, err := newApplication(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		ids, err := seedSessions(cmd.Context(), app.services.Session(), perSex, rand.New(rand.NewSource(seed)))
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		app.logger.Info("Seeded sessions", "count", len(ids), "per_sex", perSex, "seed", seed)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("per-sex", 3, "Sessions to create for each sex")
	seedCmd.Flags().Int64("seed", 0, "Random seed (0 picks one from the clock)")
}

// seedChoices are the four legal responses, drawn uniformly.
var seedChoices = [][]string{{models.OptionA}, {models.OptionB}, {models.OptionA, models.OptionB}, {}}

// seedSessions answers every item of perSex sessions per sex at random and
// completes them, going through the same service path as the HTTP API.
func seedSessions(ctx context.Context, sessions services.SessionService, perSex int, rng *rand.Rand) ([]string, error) {
	ids := make([]string, 0, perSex*len(models.AllSexes()))
	for _, sex := range models.AllSexes() {
		for i := 0; i < perSex; i++ {
			started, err := sessions.Start(ctx, &services.StartSessionRequest{Sex: string(sex)})
			if err != nil {
				return ids, fmt.Errorf("failed to start %s session: %w", sex, err)
			}
			for n := 1; n <= models.TotalQuestions; n++ {
				_, err := sessions.SaveResponse(ctx, &services.SaveResponseRequest{
					SessionID:      started.SessionID,
					QuestionNumber: n,
					Response:       seedChoices[rng.Intn(len(seedChoices))],
				})
				if err != nil {
					return ids, fmt.Errorf("failed to answer question %d of %s: %w", n, started.SessionID, err)
				}
			}
			if _, err := sessions.Complete(ctx, &services.CompleteSessionRequest{SessionID: started.SessionID}); err != nil {
				return ids, err
			}
			ids = append(ids, started.SessionID)
		}
	}
	return ids, nil
}
