// internal/history/history.go
//
// In-memory log of the attempts made during a round.
// This is a lightweight record used to replay the player's guesses after the
// round ends; durability is intentionally out of scope.
//
// Characteristics:
//   - Stores game.Attempt values in completion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package history

import (
	"sync"

	"github.com/nmoliveira/hitblow/internal/game"
)

// Log records completed incorrect guesses for one round.
// Implementations may be backed by memory (this package) or anything richer.
type Log interface {
	// Record appends one completed attempt.
	Record(a game.Attempt)

	// All returns the recorded attempts in completion order.
	All() []game.Attempt
}

// memory is an in-memory slice-backed Log implementation.
type memory struct {
	mu       sync.RWMutex // guards attempts
	attempts []game.Attempt
}

// NewMemoryLog constructs a new in-memory Log.
func NewMemoryLog() Log {
	return &memory{}
}

// Record appends the attempt to the log.
func (m *memory) Record(a game.Attempt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, a)
}

// All returns a copy of the recorded attempts.
func (m *memory) All() []game.Attempt {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]game.Attempt, len(m.attempts))
	copy(out, m.attempts)
	return out
}
