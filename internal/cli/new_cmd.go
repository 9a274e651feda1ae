package cli

import (
	"context"
	"fmt"

	"github.com/alfcoach/alfcoach/internal/cli/formatter"
	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/alfcoach/alfcoach/internal/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addOnboardingFlags registers the non-interactive equivalents of the
// onboarding wizard fields.
func addOnboardingFlags(fs *pflag.FlagSet, p *domain.Project) {
	fs.StringVar(&p.Title, "title", "", "Project title (blank = named after ideation)")
	fs.StringVar(&p.Subject, "subject", "", "Subject area (e.g. Science)")
	fs.StringVar(&p.AgeGroup, "ages", "", "Age band (e.g. \"Ages 11-14\")")
	fs.StringVar(&p.StudioTheme, "theme", "", "Studio theme (e.g. \"Scientific Inquiry\")")
	fs.StringVar(&p.EducatorPerspective, "perspective", "", "What you want for your students")
}

func newNewCmd(app *App) *cobra.Command {
	p := &domain.Project{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new project (interactive wizard)",
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := app.IsInteractive != nil && app.IsInteractive()

			if interactive && !cmd.Flags().Changed("subject") {
				if err := wizardOnboarding(p).Run(); err != nil {
					return err
				}
			}
			if p.Subject == "" {
				return fmt.Errorf("subject is required (use --subject or run interactively)")
			}
			if p.AgeGroup != "" && prompt.AgeLens(p.AgeGroup) == "" {
				fmt.Printf("%s\n", formatter.Dim(fmt.Sprintf("Note: no coaching lens for age band %q; continuing without one.", p.AgeGroup)))
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s %s\n", formatter.Bold(p.Title), formatter.Dim("["+p.DisplayID()+"]"))
			fmt.Printf("Start ideating with %s\n", formatter.StyleGreen.Render("alfcoach chat "+p.DisplayID()))
			return nil
		},
	}

	addOnboardingFlags(cmd.Flags(), p)

	return cmd
}
