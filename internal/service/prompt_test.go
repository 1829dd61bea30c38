package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_ToneTable(t *testing.T) {
	tests := []struct {
		name           string
		tone           string
		expectedClause string
		expectedTokens int
	}{
		{
			name:           "formal",
			tone:           ToneFormal,
			expectedClause: "Tone: Formal",
			expectedTokens: 1500,
		},
		{
			name:           "friendly",
			tone:           ToneFriendly,
			expectedClause: "Tone: Friendly and approachable",
			expectedTokens: 1500,
		},
		{
			name:           "technical",
			tone:           ToneTechnical,
			expectedClause: "Tone: Technical and precise",
			expectedTokens: 1500,
		},
		{
			name:           "persuasive",
			tone:           TonePersuasive,
			expectedClause: "Tone: Persuasive and compelling",
			expectedTokens: 1500,
		},
		{
			name:           "concise shrinks the budget",
			tone:           ToneConcise,
			expectedClause: "Tone: Concise. Keep the proposal to approximately 100-150 words and only include essential information.",
			expectedTokens: 200,
		},
		{
			name:           "unrecognized tone falls back to neutral",
			tone:           "sarcastic",
			expectedClause: "Tone: Neutral",
			expectedTokens: 1500,
		},
		{
			name:           "empty tone falls back to neutral",
			tone:           "",
			expectedClause: "Tone: Neutral",
			expectedTokens: 1500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, maxTokens := BuildPrompt("Website redesign for a bakery", tt.tone)

			assert.Equal(t, tt.expectedTokens, maxTokens)
			assert.Contains(t, prompt, tt.expectedClause)
			assert.Contains(t, prompt, "You are a professional proposal writer.")
			assert.Contains(t, prompt, "Output format: Plain text, no markdown")
			assert.True(t, strings.HasSuffix(prompt, "Task: Write a detailed proposal based on this description:\nWebsite redesign for a bakery"))
		})
	}
}

func TestBuildPrompt_DescriptionVerbatim(t *testing.T) {
	description := "Line one\nLine two with *markdown* and \"quotes\""
	prompt, _ := BuildPrompt(description, ToneFormal)
	assert.True(t, strings.HasSuffix(prompt, description))
}

func TestBuildPrompt_EmptyDescriptionForwarded(t *testing.T) {
	prompt, maxTokens := BuildPrompt("", ToneFormal)
	assert.Equal(t, 1500, maxTokens)
	assert.True(t, strings.HasSuffix(prompt, "Task: Write a detailed proposal based on this description:\n"))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a, aTokens := BuildPrompt("Build a CRM", ToneConcise)
	b, bTokens := BuildPrompt("Build a CRM", ToneConcise)
	assert.Equal(t, a, b)
	assert.Equal(t, aTokens, bTokens)
}
