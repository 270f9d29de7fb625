package cardgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rver/flashdeck/internal/llm"
)

// Generator produces flashcard drafts using an LLM provider.
type Generator interface {
	// Generate produces a batch of drafts for the given input context.
	// Drafts that fail structural checks or duplicate existing titles are
	// dropped; the result may be shorter than input.Count.
	Generate(ctx context.Context, input GenerateInput) ([]Draft, error)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxBatch caps how many cards a single request may ask for.
	MaxBatch int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxExistingTitles is the maximum number of existing titles to include
	// in the prompt for deduplication.
	MaxExistingTitles int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxBatch:          10,
		MaxTokens:         1024,
		Temperature:       0.7,
		MaxExistingTitles: 40,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before filtering.
type batchOutput struct {
	Cards []struct {
		Title  string `json:"title"`
		Answer string `json:"answer"`
	} `json:"cards"`
}

// Generate produces a batch of drafts for the given category.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]Draft, error) {
	if strings.TrimSpace(input.Category) == "" {
		return nil, fmt.Errorf("category is required")
	}
	if input.Count < 1 {
		input.Count = 1
	}
	if input.Count > g.config.MaxBatch {
		input.Count = g.config.MaxBatch
	}

	ctx = llm.WithPurpose(ctx, "card-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      CardBatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	seen := make(map[string]bool, len(input.ExistingTitles))
	for _, t := range input.ExistingTitles {
		seen[normalizeTitle(t)] = true
	}

	drafts := make([]Draft, 0, len(raw.Cards))
	for _, c := range raw.Cards {
		title := strings.TrimSpace(c.Title)
		answer := strings.TrimSpace(c.Answer)
		if title == "" || answer == "" {
			continue
		}
		key := normalizeTitle(title)
		if seen[key] {
			continue
		}
		seen[key] = true
		drafts = append(drafts, Draft{Title: title, Answer: answer})
		if len(drafts) == input.Count {
			break
		}
	}

	if len(drafts) == 0 {
		return nil, fmt.Errorf("LLM returned no usable cards")
	}
	return drafts, nil
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
