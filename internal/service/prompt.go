package service

// Tone values recognized by the prompt composer. Any other value falls back
// to the neutral clause.
const (
	ToneFormal     = "formal"
	ToneFriendly   = "friendly"
	ToneTechnical  = "technical"
	TonePersuasive = "persuasive"
	ToneConcise    = "concise"
)

const (
	defaultMaxTokens = 1500
	conciseMaxTokens = 200
)

// BuildPrompt deterministically assembles the generation instruction and the
// output token budget from a free-text description and a tone selector. The
// description is embedded verbatim, empty or not.
func BuildPrompt(description, tone string) (prompt string, maxTokens int) {
	prompt = "You are a professional proposal writer."
	maxTokens = defaultMaxTokens

	prompt += "\nOutput format: Plain text, no markdown (e.g., no asterisks for bolding, no hashes for headings)."

	switch tone {
	case ToneFormal:
		prompt += "\nTone: Formal"
	case ToneFriendly:
		prompt += "\nTone: Friendly and approachable"
	case ToneTechnical:
		prompt += "\nTone: Technical and precise"
	case TonePersuasive:
		prompt += "\nTone: Persuasive and compelling"
	case ToneConcise:
		prompt += "\nTone: Concise. Keep the proposal to approximately 100-150 words and only include essential information."
		maxTokens = conciseMaxTokens
	default:
		prompt += "\nTone: Neutral"
	}

	prompt += "\nTask: Write a detailed proposal based on this description:\n" + description
	return prompt, maxTokens
}
