// internal/game/secret.go
//
// Secret generation for a round.
// Responsibilities:
//   - Validate the requested level (secret length).
//   - Produce a secret of pairwise-distinct decimal digits.
//
// Generation scheme:
//   - Shuffle the digits 1..9 uniformly.
//   - Insert 0 at a uniformly random position across the full ten slots.
//   - Take the first `level` digits.
//
// Zero therefore lands in the leading position with probability 1/10, so a
// leading zero is rare but legal.

package game

import (
	"errors"
	"math/rand"
	"time"
)

const (
	// MinLevel and MaxLevel bound the secret length a player may choose.
	MinLevel = 3
	MaxLevel = 9
)

// ErrInvalidLevel is returned for levels outside [MinLevel, MaxLevel].
var ErrInvalidLevel = errors.New("invalid level, the level should be between 3 and 9")

// NewSecret produces a secret of `level` pairwise-distinct decimal digits.
// A nil rng falls back to a time-seeded source.
func NewSecret(level int, rng *rand.Rand) (Digits, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, ErrInvalidLevel
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pool := make(Digits, 0, 10)
	for v := byte(1); v <= 9; v++ {
		pool = append(pool, v)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	// Splice 0 into a random slot of the shuffled 1..9 run.
	zeroAt := rng.Intn(len(pool) + 1)
	pool = append(pool, 0)
	copy(pool[zeroAt+1:], pool[zeroAt:])
	pool[zeroAt] = 0

	return pool[:level:level], nil
}
