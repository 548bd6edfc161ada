package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/adelaplace/maitre/internal/cli/formatter"
	"github.com/adelaplace/maitre/internal/domain"
	"github.com/adelaplace/maitre/internal/service"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <situation>",
		Short: "Analyse ponctuelle d'une situation juridique",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			sess := domain.NewSession()

			stop := formatter.StartSpinner("Analyse en cours...")
			result, notice := app.Intake.HandleTurn(context.Background(), sess, question)
			stop()
			if result == nil {
				return notice
			}

			if notice != nil {
				fmt.Println(formatter.Notice(notice.Error()))
			}

			fmt.Println(formatter.AssistantReply(service.BuildAssistantText(result)))

			if len(sess.CurrentRecommendations) > 0 {
				cat, err := app.Catalog.Catalog(context.Background())
				if err != nil {
					return err
				}
				fmt.Println(formatter.RecommendationCards(cat,
					sess.CurrentRecommendations, sess.UrgencyFlag, app.Catalog.UrgencyFactor()))
			}

			return nil
		},
	}

	return cmd
}
