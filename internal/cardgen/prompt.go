package cardgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a flashcard author creating study material for a multiple-choice quiz app.

Rules:
- Generate flashcards strictly about the given category.
- Use plain ASCII text. No markdown, no Unicode symbols.
- Each title is a single self-contained question.
- Each answer is a short fact: a name, a term, a number, or a few words. Long sentences make poor quiz options.
- Answers within the batch must be distinct from each other, since they double as distractor options for one another.
- Do not repeat any question from the "already in the collection" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", input.Category)
	fmt.Fprintf(&b, "Cards wanted: %d\n", input.Count)

	b.WriteString("\nAlready in the collection:\n")
	b.WriteString(buildDedup(input.ExistingTitles, cfg.MaxExistingTitles))

	return b.String()
}

// buildDedup formats existing titles for the prompt, respecting the max limit.
// Returns "None" if the category is empty.
func buildDedup(titles []string, max int) string {
	if len(titles) == 0 {
		return "None"
	}

	// Keep only the most recent N titles.
	if max > 0 && len(titles) > max {
		titles = titles[len(titles)-max:]
	}

	var b strings.Builder
	for i, t := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}
