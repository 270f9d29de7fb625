package deck

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Flashcard is a single study card. Title holds the prompt shown to the
// user, Answer the expected response, and Category the deck it belongs to.
type Flashcard struct {
	ID       int64  `json:"id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewFlashcard builds a validated Flashcard. Fields are trimmed, the
// category is display-capitalized, and all three text fields must be
// non-empty after trimming.
func NewFlashcard(id int64, title, answer, category string) (Flashcard, error) {
	c := Flashcard{
		ID:       id,
		Title:    strings.TrimSpace(title),
		Answer:   strings.TrimSpace(answer),
		Category: CapitalizeCategory(category),
	}
	if err := validate.Struct(c); err != nil {
		return Flashcard{}, fmt.Errorf("invalid flashcard: %w", err)
	}
	return c, nil
}

// CapitalizeCategory normalizes a category for display: first rune upper,
// remainder lower, surrounding whitespace removed.
func CapitalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}
	runes := []rune(strings.ToLower(category))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
