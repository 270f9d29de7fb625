package study

import (
	"math/rand/v2"
	"strings"

	"github.com/rver/flashdeck/internal/deck"
)

// MaxOptions is the option count per card: the correct answer plus up to
// three distractors.
const MaxOptions = 4

// normalizeAnswer is the equality used everywhere answers are compared:
// surrounding whitespace and letter case are ignored.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GenerateOptions builds the multiple-choice option set for correct, drawing
// distractors from the other cards in pool. Distractors equal to the correct
// answer (or to each other) under normalizeAnswer are excluded, so the
// correct answer appears exactly once and the result holds no duplicates.
// Result length is min(distinct distractors+1, MaxOptions).
func GenerateOptions(correct deck.Flashcard, pool []deck.Flashcard, rng *rand.Rand) []string {
	seen := map[string]bool{normalizeAnswer(correct.Answer): true}
	var distractors []string
	for _, c := range pool {
		if c.ID == correct.ID {
			continue
		}
		n := normalizeAnswer(c.Answer)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		distractors = append(distractors, c.Answer)
	}

	rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > MaxOptions-1 {
		distractors = distractors[:MaxOptions-1]
	}

	options := append(distractors, correct.Answer)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
