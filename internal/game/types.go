// internal/game/types.go
//
// Core type definitions for the hits-and-blows engine.
// Defines:
//   - Digits: an ordered sequence of decimal digit values.
//   - Outcome/Result: how a round ended and after how many failed guesses.
//   - Attempt: one completed (incorrect) guess together with its score.

package game

import "strings"

// Digits is an ordered sequence of decimal digits, one value 0..9 per element.
// Both secrets and guesses are represented this way; a secret is never
// collapsed to an integer, so a leading zero survives intact.
type Digits []byte

// String renders the digits as a plain run, e.g. Digits{5,0,7,2} → "5072".
func (d Digits) String() string {
	var sb strings.Builder
	for _, v := range d {
		sb.WriteByte('0' + v)
	}
	return sb.String()
}

// Dashed renders the digits separated by dashes, e.g. "5-0-7-2".
// Used for the in-progress entry display.
func (d Digits) Dashed() string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = string(rune('0' + v))
	}
	return strings.Join(parts, "-")
}

// Outcome is the terminal result of a round.
type Outcome string

const (
	Won  Outcome = "won"
	Lost Outcome = "lost"
)

// Result describes how a round ended.
type Result struct {
	Outcome  Outcome
	Attempts int // completed incorrect guesses before the round ended
}

// Attempt is one completed guess that did not win, with its score.
type Attempt struct {
	Guess Digits
	Hits  int
	Blows int
}
