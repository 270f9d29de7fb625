package llm

import (
	"testing"
)

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // pass-through
	}
	for _, tt := range tests {
		got := resolveAlias(tt.input, geminiAliases)
		if got != tt.expected {
			t.Errorf("resolveAlias(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":    map[string]any{"type": "string"},
						"answer":   map[string]any{"type": "string"},
						"category": map[string]any{"type": "string", "enum": []any{"Geography", "Science", "History"}},
					},
					"required": []any{"title", "answer"},
				},
			},
			"count": map[string]any{"type": "integer"},
		},
		"required": []any{"cards", "count"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(schema.Properties))
	}
	cards := schema.Properties["cards"]
	if cards.Type != "ARRAY" {
		t.Fatalf("expected ARRAY for cards, got %s", cards.Type)
	}
	card := cards.Items
	if card.Type != "OBJECT" {
		t.Fatalf("expected OBJECT for card items, got %s", card.Type)
	}
	if card.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING for title, got %s", card.Properties["title"].Type)
	}
	if len(card.Properties["category"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(card.Properties["category"].Enum))
	}
	if len(card.Required) != 2 {
		t.Fatalf("expected 2 required card fields, got %d", len(card.Required))
	}
	if schema.Properties["count"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for count, got %s", schema.Properties["count"].Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
