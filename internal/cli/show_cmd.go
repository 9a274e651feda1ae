package cli

import (
	"context"
	"fmt"

	"github.com/alfcoach/alfcoach/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Show a project snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			snap, err := app.Projects.Snapshot(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProjectShow(formatter.ProjectShowData{
				Project:     snap.Project,
				Assignments: snap.Assignments,
				ChatCounts:  snap.ChatCounts,
			}))
			return nil
		},
	}
}
