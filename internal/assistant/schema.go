package assistant

import "github.com/alphaquant/academy/internal/llm"

// ReplySchema defines the JSON schema for assistant answers.
var ReplySchema = &llm.Schema{
	Name:        "assistant-reply",
	Description: "A single assistant reply to the learner's latest message",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "The answer, in short Markdown paragraphs or lists",
			},
		},
		"required":             []any{"reply"},
		"additionalProperties": false,
	},
}

type replyOutput struct {
	Reply string `json:"reply"`
}
