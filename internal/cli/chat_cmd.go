package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alfcoach/alfcoach/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat PROJECT",
		Short: "Open the coaching conversation for the project's current stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("chat needs an interactive terminal")
			}

			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			view, err := app.Sessions.Open(ctx, projectID)
			if errors.Is(err, service.ErrProjectCompleted) {
				return fmt.Errorf("this project is complete; review it with `alfcoach show %s` or rework a stage with `alfcoach revise`", args[0])
			}
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(newChatView(app, view)).Run()
			return err
		},
	}
}
