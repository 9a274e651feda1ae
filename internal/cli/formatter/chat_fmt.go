package formatter

import (
	"fmt"
	"strings"

	"github.com/alfcoach/alfcoach/internal/domain"
)

// FormatChatMessage renders one transcript entry. Failed replies are
// dimmed in red so the educator can tell an apology from real coaching.
func FormatChatMessage(m *domain.ChatMessage) string {
	var b strings.Builder

	switch {
	case m.Role == domain.RoleUser:
		b.WriteString(Dim("You: ") + StyleFg.Render(m.Content))
	case m.Failed:
		b.WriteString(StyleRed.Render("Coach: ") + Dim(m.Content))
	default:
		b.WriteString(StyleGreen.Render("Coach: ") + StyleFg.Render(m.Content))
	}

	if len(m.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatSuggestions(m.Suggestions))
	}
	if m.NewAssignment != nil {
		b.WriteString("\n" + StylePurple.Render("  + Assignment: ") + Bold(m.NewAssignment.Title))
	}
	if m.StageComplete {
		b.WriteString("\n" + StyleGreen.Render("  ✔ Stage ready to advance"))
	}

	return b.String()
}

// FormatSuggestions renders the numbered suggestion list; the numbers
// match the digit keys the chat view accepts.
func FormatSuggestions(suggestions []string) string {
	var b strings.Builder
	for i, s := range suggestions {
		b.WriteString(fmt.Sprintf("  %s %s", StyleYellow.Render(fmt.Sprintf("[%d]", i+1)), Dim(s)))
		if i < len(suggestions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatStageBanner renders the banner shown when a chat session opens.
func FormatStageBanner(p *domain.Project) string {
	return Header(fmt.Sprintf("%s — %s", p.Title, p.Stage.Label()))
}
