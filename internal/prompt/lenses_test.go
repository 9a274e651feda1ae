package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeLens_AllSupportedBands(t *testing.T) {
	for _, age := range AgeGroups() {
		assert.NotEmpty(t, AgeLens(age), "age band %q should have a lens", age)
	}
}

func TestAgeLens_UnknownKeyIsEmpty(t *testing.T) {
	assert.Empty(t, AgeLens("Toddlers"))
	assert.Empty(t, AgeLens(""))
}

func TestStudioLens_AllSupportedThemes(t *testing.T) {
	for _, theme := range StudioThemes() {
		assert.NotEmpty(t, StudioLens(theme), "theme %q should have a lens", theme)
	}
}

func TestStudioLens_UnknownKeyIsEmpty(t *testing.T) {
	assert.Empty(t, StudioLens("Esports"))
	assert.Empty(t, StudioLens(""))
}
