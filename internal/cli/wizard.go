package cli

import (
	"github.com/alfcoach/alfcoach/internal/cli/formatter"
	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/alfcoach/alfcoach/internal/prompt"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// alfHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func alfHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardOnboarding builds the huh form that collects a new project. The
// age band and studio theme selects are sourced from the coaching
// lenses, so every choice has prompt material behind it.
func wizardOnboarding(p *domain.Project) *huh.Form {
	ageOptions := make([]huh.Option[string], 0, len(prompt.AgeGroups()))
	for _, a := range prompt.AgeGroups() {
		ageOptions = append(ageOptions, huh.NewOption(a, a))
	}
	themeOptions := make([]huh.Option[string], 0, len(prompt.StudioThemes()))
	for _, s := range prompt.StudioThemes() {
		themeOptions = append(themeOptions, huh.NewOption(s, s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project title").
				Description("Leave blank to name it after ideation").
				Value(&p.Title),
			huh.NewInput().
				Title("Subject").
				Placeholder("e.g. Science, History, Art").
				Value(&p.Subject),
			huh.NewSelect[string]().
				Title("Age band").
				Options(ageOptions...).
				Value(&p.AgeGroup),
			huh.NewSelect[string]().
				Title("Studio theme").
				Options(themeOptions...).
				Value(&p.StudioTheme),
			huh.NewText().
				Title("What do you want for your students?").
				Description("One or two sentences; this shapes every coaching turn").
				Value(&p.EducatorPerspective),
		),
	).WithTheme(alfHuhTheme()).WithShowHelp(false)
}
