// Package llm abstracts the hosted model APIs used for card generation.
// One Provider interface fronts Anthropic, OpenAI and Gemini backends plus
// a deterministic mock; retry and logging decorators stack on top.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one prompt and returns structured JSON. Card generation is
// the only caller today, so the surface is deliberately small: no streaming,
// no tool use, single response.
type Provider interface {
	// Generate performs one completion. When req.Schema is set the backend
	// is asked for schema-conforming JSON and the result is validated
	// locally before it is returned, so Content is safe to unmarshal.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports which model this provider targets, for logs.
	ModelID() string
}

// Request is a provider-neutral completion request.
type Request struct {
	// System sets the model's role, e.g. the flashcard-author instructions.
	System string

	// Messages is the turn history. Card generation sends exactly one user
	// turn; the slice exists so a future refine step can continue a thread.
	Messages []Message

	// Schema, when non-nil, constrains the output. Each backend maps it to
	// its native structured-output mechanism.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the model output must satisfy. Name doubles as
// the tool/schema identifier sent to the backend ("card-batch" for the deck
// generator) and as the compile-cache key.
type Schema struct {
	Name        string
	Description string

	// Definition is the schema body as a plain map, kept provider-neutral;
	// the Gemini backend converts it to its own schema type.
	Definition map[string]any
}

// Response is the provider-neutral completion result.
type Response struct {
	// Content is schema-validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request, which can be a
	// concrete version of the configured alias.
	Model string

	// StopReason is normalized across backends to "end" or "max_tokens".
	StopReason string
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
