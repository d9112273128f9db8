// Package highscore persists the best score of each game as a decimal string
// in a key-value store. Reads and writes are best effort: a failing store
// never interrupts play.
package highscore

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// KV is the key-value collaborator the high score lives in.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set stores value under key.
	Set(key, value string) error
	// Raise stores score under key unless the stored number is already at
	// least as high, and returns the number stored afterwards. It is atomic
	// with respect to other writers of the same store.
	Raise(key string, score int) (int, error)
}

// Key returns the storage key for a game, e.g. "snakeHighScore".
func Key(gameID string) string {
	return gameID + "HighScore"
}

// Parse decodes a stored value. Missing, negative or malformed values are 0.
func Parse(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Format encodes a score for storage.
func Format(score int) string {
	return strconv.Itoa(max(score, 0))
}

// Tracker caches one game's high score and writes through on every new best.
type Tracker struct {
	kv     KV
	key    string
	logger *log.Logger
	best   int
	loaded bool
}

// NewTracker creates a tracker for gameID. A nil logger discards warnings.
func NewTracker(kv KV, gameID string, logger *log.Logger) *Tracker {
	return &Tracker{
		kv:     kv,
		key:    Key(gameID),
		logger: logger,
	}
}

// Load reads the stored value once. Later calls return the cached best.
func (t *Tracker) Load() int {
	if t.loaded {
		return t.best
	}
	t.loaded = true

	if t.kv == nil {
		return 0
	}
	v, ok, err := t.kv.Get(t.key)
	if err != nil {
		t.warn("cannot read high score", err)
		return 0
	}
	if ok {
		t.best = Parse(v)
	}
	return t.best
}

// Best returns the cached best score.
func (t *Tracker) Best() int {
	return t.best
}

// Record stores score if it beats the best and reports whether it did.
// Other trackers may share the store, so the stored value is only ever
// raised; a higher stored best is adopted instead. The cache is updated
// even if the write fails.
func (t *Tracker) Record(score int) bool {
	if score <= t.best {
		return false
	}
	t.best = score
	if t.kv == nil {
		return true
	}

	stored, err := t.kv.Raise(t.key, score)
	if err != nil {
		t.warn("cannot write high score", err)
		return true
	}
	if stored > score {
		t.best = stored
		return false
	}
	return true
}

func (t *Tracker) warn(msg string, err error) {
	if t.logger != nil {
		t.logger.Warn(msg, "key", t.key, "error", err)
	}
}
