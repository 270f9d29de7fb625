package cardgen

// Draft is a generated flashcard before it is added to the collection.
// It carries no ID; the card store assigns one when the user accepts it.
type Draft struct {
	// Title is the card front, e.g. "What is the capital of the Philippines?"
	Title string

	// Answer is the card back. Short, a single fact, suitable for use as a
	// multiple-choice option.
	Answer string
}

// GenerateInput holds all context needed to generate a batch of cards.
type GenerateInput struct {
	// Category is the topic the cards belong to, e.g. "Geography - philippines".
	Category string

	// Count is how many cards to request. Clamped to Config.MaxBatch.
	Count int

	// ExistingTitles contains the titles already present in the category.
	// Used for deduplication in the prompt.
	ExistingTitles []string
}
