package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alfcoach/alfcoach/internal/service"
	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PROJECT",
		Short: "Delete a project and its conversations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			err = app.Projects.Delete(ctx, projectID, force)
			if errors.Is(err, service.ErrDeleteGuarded) {
				return fmt.Errorf("project is still in progress; pass --force to delete it anyway")
			}
			if err != nil {
				return err
			}
			fmt.Printf("Deleted project %s\n", projectID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if the project is not completed")

	return cmd
}
