// Package history is the read model over committed study sessions, plus the
// append path the study engine commits through.
package history

import (
	"log/slog"
	"sort"
	"time"

	"github.com/rver/flashdeck/internal/store"
)

// Result is one attempt logged during a session. AnswerRecord holds the
// correct answer for a hit, or "given -> expected" for a miss.
type Result struct {
	CardID       int64  `json:"cardId"`
	Title        string `json:"title"`
	AnswerRecord string `json:"answerRecord"`
	Correct      bool   `json:"isCorrect"`
}

// Record is the immutable summary of one completed study session. Total is
// the category's card count at session start, which requeues never change.
type Record struct {
	ID       string        `json:"id"`
	Category string        `json:"category"`
	Date     time.Time     `json:"date"`
	Score    int           `json:"score"`
	Total    int           `json:"total"`
	Results  []Result      `json:"sessionResults"`
	Attempts map[int64]int `json:"attempts,omitempty"`
}

// Log reads and appends the persisted record sequence.
type Log struct {
	gw  store.Gateway
	log *slog.Logger
}

// NewLog creates a Log over the given gateway.
func NewLog(gw store.Gateway, log *slog.Logger) *Log {
	if log == nil {
		log = slog.Default()
	}
	return &Log{gw: gw, log: log}
}

// List returns all valid records, most recent first. Absent or malformed
// stored history degrades to an empty list with a log line.
func (l *Log) List() []Record {
	records := l.loadAll()
	valid := records[:0]
	for _, r := range records {
		if r.Category != "" && r.Total > 0 {
			valid = append(valid, r)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.After(valid[j].Date)
	})
	return valid
}

// Append adds a record to the persisted sequence. Persistence failures are
// logged and swallowed; the session is over either way.
func (l *Log) Append(rec Record) {
	records := append(l.loadAll(), rec)
	if err := l.gw.Set(store.KeyHistory, records); err != nil {
		l.log.Warn("persisting study history failed", "error", err)
	}
}

// Clear drops all persisted history.
func (l *Log) Clear() {
	if err := l.gw.Set(store.KeyHistory, []Record{}); err != nil {
		l.log.Warn("clearing study history failed", "error", err)
	}
}

func (l *Log) loadAll() []Record {
	var records []Record
	ok, err := l.gw.Get(store.KeyHistory, &records)
	if err != nil {
		l.log.Warn("loading study history failed, treating as empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return records
}

// AttemptStats summarizes the attempt counts of one record.
type AttemptStats struct {
	Total   int     // sum of all per-card attempt counts
	Average float64 // attempts per distinct card, 0 when no cards
}

// AggregateAttempts computes attempt totals for a record. When the record
// carries no attempt map (older records), counts are derived from the
// result log.
func AggregateAttempts(rec Record) AttemptStats {
	attempts := rec.Attempts
	if attempts == nil {
		attempts = make(map[int64]int)
		for _, r := range rec.Results {
			attempts[r.CardID]++
		}
	}
	var stats AttemptStats
	for _, n := range attempts {
		stats.Total += n
	}
	if len(attempts) > 0 {
		stats.Average = float64(stats.Total) / float64(len(attempts))
	}
	return stats
}

// CorrectRate returns the percentage of attempts answered correctly,
// 0 when the record has no attempts.
func CorrectRate(rec Record) float64 {
	total := AggregateAttempts(rec).Total
	if total == 0 {
		return 0
	}
	return float64(rec.Score) / float64(total) * 100
}
