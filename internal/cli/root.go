package cli

import (
	"github.com/alfcoach/alfcoach/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Sessions service.SessionService

	// IsInteractive reports whether stdin is a terminal; wizards and the
	// chat TUI require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "alfcoach" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "alfcoach",
		Short: "AI coaching companion for designing project-based learning units",
		Long: `ALF Coach walks an educator through designing a project-based
learning unit in three conversational stages: ideation, curriculum
design, and assignment design.`,
	}

	root.AddCommand(
		newNewCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newChatCmd(app),
		newAdvanceCmd(app),
		newReviseCmd(app),
		newDeleteCmd(app),
	)

	return root
}
