package study

import (
	"math/rand/v2"
	"testing"

	"github.com/rver/flashdeck/internal/deck"
)

func optionPool(answers ...string) []deck.Flashcard {
	cards := make([]deck.Flashcard, len(answers))
	for i, a := range answers {
		cards[i] = deck.Flashcard{ID: int64(i + 1), Title: "Q", Answer: a, Category: "Geo"}
	}
	return cards
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func countNormalized(options []string, answer string) int {
	n := 0
	for _, o := range options {
		if normalizeAnswer(o) == normalizeAnswer(answer) {
			n++
		}
	}
	return n
}

func TestGenerateOptionsContainsCorrectExactlyOnce(t *testing.T) {
	pool := optionPool("Manila", "Cebu", "Davao", "Baguio", "Iloilo")
	opts := GenerateOptions(pool[0], pool, testRNG())

	if len(opts) != MaxOptions {
		t.Fatalf("len = %d, want %d", len(opts), MaxOptions)
	}
	if countNormalized(opts, "Manila") != 1 {
		t.Errorf("correct answer appears %d times in %v, want 1",
			countNormalized(opts, "Manila"), opts)
	}
}

func TestGenerateOptionsSmallPool(t *testing.T) {
	pool := optionPool("Manila", "Cebu")
	opts := GenerateOptions(pool[0], pool, testRNG())

	if len(opts) != 2 {
		t.Fatalf("len = %d, want 2 for one distractor", len(opts))
	}
	if countNormalized(opts, "Manila") != 1 || countNormalized(opts, "Cebu") != 1 {
		t.Errorf("options = %v, want both answers once", opts)
	}
}

func TestGenerateOptionsSingleCard(t *testing.T) {
	pool := optionPool("Manila")
	opts := GenerateOptions(pool[0], pool, testRNG())

	if len(opts) != 1 || opts[0] != "Manila" {
		t.Errorf("options = %v, want just the correct answer", opts)
	}
}

func TestGenerateOptionsDeduplicatesNormalized(t *testing.T) {
	// "manila " collides with the correct answer and " CEBU" with another
	// distractor once case and whitespace are stripped.
	pool := optionPool("Manila", "manila ", "Cebu", " CEBU", "Davao")
	opts := GenerateOptions(pool[0], pool, testRNG())

	if len(opts) != 3 {
		t.Fatalf("len = %d, want 3 (correct + 2 distinct distractors): %v", len(opts), opts)
	}
	seen := map[string]bool{}
	for _, o := range opts {
		n := normalizeAnswer(o)
		if seen[n] {
			t.Errorf("duplicate option %q in %v", o, opts)
		}
		seen[n] = true
	}
}

func TestGenerateOptionsDeterministicForSeed(t *testing.T) {
	pool := optionPool("Manila", "Cebu", "Davao", "Baguio", "Iloilo", "Vigan")

	a := GenerateOptions(pool[2], pool, rand.New(rand.NewPCG(1, 1)))
	b := GenerateOptions(pool[2], pool, rand.New(rand.NewPCG(1, 1)))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("orders differ for identical seed: %v vs %v", a, b)
		}
	}
}
