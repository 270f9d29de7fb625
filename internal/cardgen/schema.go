package cardgen

import "github.com/rver/flashdeck/internal/llm"

// CardBatchSchema defines the JSON schema for LLM card generation responses.
var CardBatchSchema = &llm.Schema{
	Name:        "card-batch",
	Description: "A batch of flashcards for a single study category",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type":        "array",
				"description": "The generated flashcards",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "The card front: a single clear question in plain ASCII text",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The card back: a short factual answer, a few words at most",
						},
					},
					"required":             []any{"title", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}
