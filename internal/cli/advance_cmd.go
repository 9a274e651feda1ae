package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alfcoach/alfcoach/internal/cli/formatter"
	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/alfcoach/alfcoach/internal/service"
	"github.com/spf13/cobra"
)

func newAdvanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advance PROJECT",
		Short: "Advance a project to its next stage",
		Long: `Advance moves a project forward once the coach has marked the
current stage complete. Advancing out of ideation summarizes the
conversation into the project's core idea and challenge first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			var updated *domain.Project
			if p.Stage == domain.StageIdeation {
				stop := formatter.StartSpinner("Summarizing your ideation conversation...")
				updated, err = app.Sessions.FinalizeIdeation(ctx, projectID)
				stop()
			} else {
				updated, err = app.Sessions.Advance(ctx, projectID)
			}
			if errors.Is(err, service.ErrStageNotComplete) {
				return fmt.Errorf("the coach hasn't marked this stage complete yet; keep chatting with `alfcoach chat %s`", p.DisplayID())
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s is now in %s\n", formatter.Bold(updated.Title), formatter.StagePill(updated.Stage))
			if updated.Stage == domain.StageCurriculum && updated.CoreIdea != "" {
				fmt.Printf("%s %s\n", formatter.Dim("Core idea:"), updated.CoreIdea)
				fmt.Printf("%s %s\n", formatter.Dim("Challenge:"), updated.Challenge)
			}
			if updated.Stage == domain.StageCompleted {
				fmt.Printf("%s\n", formatter.StyleGreen.Render("Project complete! See the full plan with `alfcoach show "+updated.DisplayID()+"`"))
			}
			return nil
		},
	}
}
