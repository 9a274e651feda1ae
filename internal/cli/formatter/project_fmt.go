package formatter

import (
	"fmt"
	"strings"

	"github.com/alfcoach/alfcoach/internal/domain"
)

// ProjectShowData holds everything the show view renders.
type ProjectShowData struct {
	Project     *domain.Project
	Assignments []*domain.Assignment
	ChatCounts  map[domain.Stage]int
}

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "TITLE", "SUBJECT", "AGES", "STAGE", "UPDATED"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Title),
			StyleFg.Render(p.Subject),
			AgeBadge(p.AgeGroup),
			StagePill(p.Stage),
			Dim(HumanTimestamp(p.UpdatedAt)),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Projects", table)
}

// FormatProjectShow renders the full project snapshot card.
func FormatProjectShow(data ProjectShowData) string {
	p := data.Project
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Title) + "\n")
	b.WriteString(ThemeBadge(p.StudioTheme) + "  " + AgeBadge(p.AgeGroup) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STAGE  "), StagePill(p.Stage)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID     "), TruncID(p.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SUBJECT"), StyleFg.Render(p.Subject)))
	if p.EducatorPerspective != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("GOAL   "), StyleFg.Render(p.EducatorPerspective)))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UPDATED"), HumanTimestamp(p.UpdatedAt)))

	if p.CoreIdea != "" || p.Challenge != "" {
		b.WriteString("\n" + Header("Big Idea") + "\n")
		if p.CoreIdea != "" {
			b.WriteString(StyleFg.Render(p.CoreIdea) + "\n")
		}
		if p.Challenge != "" {
			b.WriteString(Dim("Challenge: ") + StyleFg.Render(p.Challenge) + "\n")
		}
	}

	if p.CurriculumDraft != "" {
		b.WriteString("\n" + Header("Curriculum Draft") + "\n")
		b.WriteString(StyleFg.Render(p.CurriculumDraft) + "\n")
	}

	if len(data.Assignments) > 0 {
		b.WriteString("\n" + Header("Assignments") + "\n")
		for _, a := range data.Assignments {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleGreen.Render(fmt.Sprintf("%d.", a.Position)), Bold(a.Title)))
			b.WriteString("   " + StyleFg.Render(a.Description) + "\n")
			if a.Rubric != "" {
				b.WriteString("   " + Dim("Rubric: "+a.Rubric) + "\n")
			}
		}
	}

	if len(data.ChatCounts) > 0 {
		b.WriteString("\n" + Header("Conversations") + "\n")
		for _, stage := range []domain.Stage{domain.StageIdeation, domain.StageCurriculum, domain.StageAssignments} {
			if n := data.ChatCounts[stage]; n > 0 {
				b.WriteString(fmt.Sprintf("%s %s\n", StagePill(stage), Dim(fmt.Sprintf("%d messages", n))))
			}
		}
	}

	return RenderBox("", b.String())
}
