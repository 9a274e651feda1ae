package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stageReply struct {
	ChatResponse  string  `json:"chatResponse"`
	StageComplete bool    `json:"isStageComplete"`
	Confidence    float64 `json:"confidence,omitempty"`
}

func TestExtractJSON_Plain(t *testing.T) {
	raw := `{"chatResponse": "Let's start with your subject.", "isStageComplete": false}`

	out, err := ExtractJSON[stageReply](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Let's start with your subject.", out.ChatResponse)
	assert.False(t, out.StageComplete)
}

func TestExtractJSON_CodeFences(t *testing.T) {
	raw := "```json\n{\"chatResponse\": \"hi\", \"isStageComplete\": true}\n```"

	out, err := ExtractJSON[stageReply](raw, nil)
	require.NoError(t, err)
	assert.True(t, out.StageComplete)
}

func TestExtractJSON_LeadingAndTrailingProse(t *testing.T) {
	raw := `Sure! Here is the JSON you asked for:
{"chatResponse": "hello", "isStageComplete": false}
Hope that helps.`

	out, err := ExtractJSON[stageReply](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.ChatResponse)
}

func TestExtractJSON_NestedBracesInsideStrings(t *testing.T) {
	raw := `{"chatResponse": "use {curly} braces and \"quotes\"", "isStageComplete": false}`

	out, err := ExtractJSON[stageReply](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `use {curly} braces and "quotes"`, out.ChatResponse)
}

func TestExtractJSON_LineComments(t *testing.T) {
	raw := `{
		"chatResponse": "hi", // the model narrates
		"isStageComplete": true
	}`

	out, err := ExtractJSON[stageReply](raw, nil)
	require.NoError(t, err)
	assert.True(t, out.StageComplete)
}

func TestExtractJSON_LeadingDecimal(t *testing.T) {
	raw := `{"chatResponse": "hi", "isStageComplete": false, "confidence": .85}`

	out, err := ExtractJSON[stageReply](raw, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, out.Confidence, 1e-9)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[stageReply]("I am sorry, I cannot respond in JSON.", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	raw := `{"chatResponse": "", "isStageComplete": false}`

	_, err := ExtractJSON[stageReply](raw, func(r stageReply) error {
		if r.ChatResponse == "" {
			return fmt.Errorf("chatResponse is required")
		}
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
	assert.Contains(t, err.Error(), "chatResponse is required")
}

func TestExtractJSON_MalformedJSON(t *testing.T) {
	_, err := ExtractJSON[stageReply](`{"chatResponse": "hi",}`, nil)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}
