package cli

import (
	"context"
	"fmt"

	"github.com/alfcoach/alfcoach/internal/cli/formatter"
	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/spf13/cobra"
)

func newReviseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revise PROJECT STAGE",
		Short: "Go back to an earlier stage",
		Long: `Revise rewinds a project to an earlier stage to rework it. The
stage's conversation is kept and the coach leaves a recap of where
things stand. Later-stage work (curriculum draft, assignments) is
preserved.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			target, err := domain.ParseStage(args[1])
			if err != nil {
				return err
			}

			updated, err := app.Sessions.Revise(ctx, projectID, target)
			if err != nil {
				return err
			}

			fmt.Printf("%s is back in %s\n", formatter.Bold(updated.Title), formatter.StagePill(updated.Stage))
			fmt.Printf("Pick up the conversation with %s\n", formatter.StyleGreen.Render("alfcoach chat "+updated.DisplayID()))
			return nil
		},
	}
}
