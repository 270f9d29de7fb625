// Package study implements the quiz state machine: deck composition,
// per-card option sets, the lives/requeue mechanic, scoring, and the
// one-shot commit of a finished session to history.
package study

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/rver/flashdeck/internal/deck"
	"github.com/rver/flashdeck/internal/history"
)

// Option configures a Session at construction. Tests inject a seeded RNG
// and a fixed clock.
type Option func(*Session)

// WithRand sets the RNG used for option shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithClock sets the time source used for the committed record's date.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession starts a session over the given category cards. The deck is a
// copy, so later card-store mutations don't disturb the run. Returns nil
// when the category has no cards: an empty category is a normal empty state,
// not an error.
func NewSession(category string, cards []deck.Flashcard, opts ...Option) *Session {
	if len(cards) == 0 {
		return nil
	}
	s := &Session{
		Category: category,
		Deck:     append([]deck.Flashcard(nil), cards...),
		Lives:    InitialLives,
		Total:    len(cards),
		Phase:    PhaseInProgress,
		options:  make(map[int64][]string),
		rng: rand.New(rand.NewPCG(
			uint64(time.Now().UnixNano()), uint64(len(cards)))),
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Card returns the card under the display cursor.
func (s *Session) Card() deck.Flashcard {
	return s.Deck[s.Cursor]
}

// Options returns the option set for the card under the cursor, generating
// it on first sight and caching it for the session's lifetime. A requeued
// card shows the same options it showed the first time.
func (s *Session) Options() []string {
	card := s.Deck[s.Cursor]
	if cached, ok := s.options[card.ID]; ok {
		return cached
	}
	opts := GenerateOptions(card, s.Deck, s.rng)
	s.options[card.ID] = opts
	return opts
}

// Submit records an answer for the current card. Submissions during the
// feedback window, while browsing a past card, or after completion are
// ignored. The deck itself does not move here; Resolve applies the advance
// or requeue when the feedback window ends.
func (s *Session) Submit(option string) Outcome {
	if s.Phase != PhaseInProgress || s.waiting || s.Cursor != s.Current {
		return OutcomeIgnored
	}

	card := s.Deck[s.Current]
	correct := normalizeAnswer(option) == normalizeAnswer(card.Answer)

	res := history.Result{CardID: card.ID, Title: card.Title, Correct: correct}
	outcome := OutcomeCorrect
	switch {
	case correct:
		res.AnswerRecord = card.Answer
		s.Score++
		s.pending = resolveAdvance
	case s.Lives > 0:
		res.AnswerRecord = option + " -> " + card.Answer
		s.Lives--
		s.pending = resolveRequeue
		outcome = OutcomeIncorrect
	default:
		res.AnswerRecord = option + " -> " + card.Answer
		s.pending = resolveAdvance
		outcome = OutcomeRevealed
	}

	s.Results = append(s.Results, res)
	s.selected = option
	s.waiting = true
	return outcome
}

// Resolve applies the pending advance or requeue. It is meant to run when
// the feedback window ends; epoch must match the value captured at Submit
// time (see Epoch), so a callback scheduled before a reset can never mutate
// the session that replaced it. Returns false for stale or spurious calls.
func (s *Session) Resolve(epoch int) bool {
	if epoch != s.epoch || !s.waiting {
		return false
	}

	switch s.pending {
	case resolveAdvance:
		s.Current++
	case resolveRequeue:
		// Move the missed card to the tail without advancing: the next card
		// shown is whichever now occupies the same index. Deck length is
		// unchanged.
		card := s.Deck[s.Current]
		s.Deck = append(s.Deck[:s.Current], s.Deck[s.Current+1:]...)
		s.Deck = append(s.Deck, card)
	}

	s.pending = resolveNone
	s.waiting = false
	s.selected = ""
	s.Cursor = s.Current

	if s.Current >= len(s.Deck) {
		s.Phase = PhaseCompleted
		s.Cursor = len(s.Deck) - 1
	}
	return true
}

// Waiting reports whether the feedback window is open (submissions gated).
func (s *Session) Waiting() bool { return s.waiting }

// Selected returns the option submitted for the current card, or "" when
// awaiting an answer.
func (s *Session) Selected() string { return s.selected }

// Completed reports whether the progress pointer has passed the last card.
func (s *Session) Completed() bool { return s.Phase == PhaseCompleted }

// Epoch returns the token that Resolve calls must echo. Reset bumps it,
// which is what invalidates feedback callbacks still in flight.
func (s *Session) Epoch() int { return s.epoch }

// Prev moves the display cursor to the previous already-seen card. Browsing
// never touches score, the option cache, or the commit path.
func (s *Session) Prev() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

// Next moves the display cursor forward, never past the current card.
func (s *Session) Next() {
	limit := s.Current
	if limit >= len(s.Deck) {
		limit = len(s.Deck) - 1
	}
	if s.Cursor < limit {
		s.Cursor++
	}
}

// Browsing reports whether the cursor is on a past card rather than the one
// awaiting an answer.
func (s *Session) Browsing() bool { return s.Cursor != s.Current && s.Phase == PhaseInProgress }

// Reset returns the session to category selection, discarding all progress.
// Any feedback callback scheduled before the reset becomes stale.
func (s *Session) Reset() {
	s.epoch++
	s.Phase = PhaseSelecting
	s.Deck = nil
	s.Current = 0
	s.Cursor = 0
	s.Lives = 0
	s.Score = 0
	s.Results = nil
	s.Total = 0
	s.options = make(map[int64][]string)
	s.selected = ""
	s.waiting = false
	s.pending = resolveNone
	s.saved = false
}

// Commit appends the finished session to history exactly once. Later calls
// (completion re-renders, stray messages) are no-ops. Total is the category
// card count captured at session start; requeues reorder the deck but never
// change its length, so the two always agree.
func (s *Session) Commit(log *history.Log) bool {
	if s.Phase != PhaseCompleted || s.saved {
		return false
	}
	s.saved = true

	attempts := make(map[int64]int, s.Total)
	for _, r := range s.Results {
		attempts[r.CardID]++
	}

	log.Append(history.Record{
		ID:       uuid.NewString(),
		Category: s.Category,
		Date:     s.now(),
		Score:    s.Score,
		Total:    s.Total,
		Results:  s.Results,
		Attempts: attempts,
	})
	return true
}
