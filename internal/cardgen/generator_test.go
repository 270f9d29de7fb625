package cardgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rver/flashdeck/internal/llm"
)

func validBatchJSON() json.RawMessage {
	return json.RawMessage(`{
		"cards": [
			{"title": "What is the capital of the Philippines?", "answer": "Manila"},
			{"title": "What is the national language of the Philippines?", "answer": "Filipino"},
			{"title": "How many islands make up the Philippines?", "answer": "7641"}
		]
	}`)
}

func TestGenerate_Batch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := New(mock, DefaultConfig())

	drafts, err := gen.Generate(context.Background(), GenerateInput{
		Category: "Geography - philippines",
		Count:    3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("expected 3 drafts, got %d", len(drafts))
	}
	if drafts[0].Title != "What is the capital of the Philippines?" {
		t.Errorf("unexpected title: %q", drafts[0].Title)
	}
	if drafts[0].Answer != "Manila" {
		t.Errorf("unexpected answer: %q", drafts[0].Answer)
	}
}

func TestGenerate_CountCapsResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := New(mock, DefaultConfig())

	drafts, err := gen.Generate(context.Background(), GenerateInput{
		Category: "Geography - philippines",
		Count:    2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 2 {
		t.Errorf("expected 2 drafts, got %d", len(drafts))
	}
}

func TestGenerate_SkipsDuplicatesAndBlanks(t *testing.T) {
	raw := json.RawMessage(`{
		"cards": [
			{"title": "what is the capital of the philippines?  ", "answer": "Manila"},
			{"title": "", "answer": "Cebu"},
			{"title": "What is the largest Philippine island?", "answer": ""},
			{"title": "What is the national flower?", "answer": "Sampaguita"}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	drafts, err := gen.Generate(context.Background(), GenerateInput{
		Category:       "Geography - philippines",
		Count:          4,
		ExistingTitles: []string{"What is the capital of the Philippines?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d: %+v", len(drafts), drafts)
	}
	if drafts[0].Answer != "Sampaguita" {
		t.Errorf("unexpected survivor: %+v", drafts[0])
	}
}

func TestGenerate_EmptyCategory(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Category: "  "})
	if err == nil {
		t.Fatal("expected error for empty category")
	}
}

func TestGenerate_AllCardsUnusable(t *testing.T) {
	raw := json.RawMessage(`{"cards": [{"title": "", "answer": ""}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Category: "Geography - philippines",
		Count:    3,
	})
	if err == nil {
		t.Fatal("expected error when no cards survive filtering")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	wantErr := errors.New("boom")
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Category: "Geography - philippines",
		Count:    3,
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestGenerate_PromptIncludesExistingTitles(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Category:       "Geography - philippines",
		Count:          3,
		ExistingTitles: []string{"What sea borders the Philippines to the west?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "What sea borders the Philippines to the west?") {
		t.Errorf("prompt missing dedup list:\n%s", msg)
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "card-batch" {
		t.Errorf("request missing card-batch schema")
	}
}

func TestGenerate_BatchClampedToMax(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	cfg := DefaultConfig()
	cfg.MaxBatch = 5
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), GenerateInput{
		Category: "Geography - philippines",
		Count:    50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Cards wanted: 5") {
		t.Errorf("count not clamped in prompt:\n%s", msg)
	}
}
