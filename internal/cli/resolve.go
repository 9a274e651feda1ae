package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveProjectID turns user input into a project UUID. It accepts an
// exact UUID, a UUID prefix, or a case-insensitive title match.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact UUID match
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 2. Exact title match (case-insensitive)
	for _, p := range projects {
		if strings.EqualFold(p.Title, input) {
			return p.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q (run `alfcoach list`)", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
