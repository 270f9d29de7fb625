package store

// Collection keys. Each key maps to one JSON-encoded value; there is no
// schema versioning, and readers treat absent or malformed values as empty.
const (
	KeyFlashcards = "flashcards"
	KeyHistory    = "studyHistory"
	KeyDarkMode   = "darkMode"
)

// Gateway is the persistence contract consumed by the card store, the study
// engine's commit path, the history log, and the theme toggle. It is a plain
// key/value mapping: Get decodes the stored JSON into out and reports whether
// the key existed; Set replaces the value for key.
type Gateway interface {
	Get(key string, out any) (bool, error)
	Set(key string, value any) error
}
