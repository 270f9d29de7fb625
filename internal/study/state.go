package study

import (
	"math/rand/v2"
	"time"

	"github.com/rver/flashdeck/internal/deck"
	"github.com/rver/flashdeck/internal/history"
)

// Phase is the coarse state of the study flow.
type Phase int

const (
	PhaseSelecting  Phase = iota // picking a category, no active deck
	PhaseInProgress              // answering cards
	PhaseCompleted               // deck exhausted, record committed (or committing)
)

const (
	// InitialLives is how many misses trigger a requeue before missed cards
	// simply advance with the answer revealed.
	InitialLives = 5

	// FeedbackDelay is the fixed display window between answering a card and
	// the deck advancing or requeuing.
	FeedbackDelay = time.Second
)

// resolution is the deck mutation deferred until the feedback window ends.
type resolution int

const (
	resolveNone resolution = iota
	resolveAdvance
	resolveRequeue
)

// Outcome classifies a Submit call for feedback display.
type Outcome int

const (
	// OutcomeIgnored means the submission was dropped: a cooldown is in
	// effect, the user is browsing a past card, or the session is over.
	OutcomeIgnored Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	// OutcomeRevealed is a miss with lives exhausted: the correct answer is
	// shown and the card advances without requeue.
	OutcomeRevealed
)

// Session is the state of one study run over a single category.
//
// Deck starts as a copy of the category's cards and only ever changes by
// requeue: a missed card moves from its current position to the tail, so the
// deck length always equals Total. Current is the progress pointer; Cursor
// is a display pointer that can trail behind it when the user browses
// already-seen cards.
type Session struct {
	Category string
	Deck     []deck.Flashcard
	Current  int
	Cursor   int
	Lives    int
	Score    int
	Results  []history.Result
	Total    int
	Phase    Phase

	options  map[int64][]string
	selected string
	waiting  bool
	pending  resolution
	epoch    int
	saved    bool

	rng *rand.Rand
	now func() time.Time
}
