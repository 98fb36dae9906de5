// internal/round/loop.go
//
// Interactive driver for a single round.
// Responsibilities:
//   - Own the per-guess countdown clock and the in-progress entry buffer.
//   - Drain digits from the input source without blocking.
//   - Redraw the status line in place and score completed guesses.
//   - Decide the terminal outcome and raise the stop signal.
//
// The loop never blocks on input: each tick it observes the clock, drains
// whatever digits arrived, renders, scores if the buffer is full, and sleeps.
//
// Package-level defaults are kept here for clarity.

package round

import (
	"fmt"
	"io"
	"time"

	"github.com/nmoliveira/hitblow/internal/game"
	"github.com/nmoliveira/hitblow/internal/history"
)

const (
	defaultBudget = 10 * time.Second
	defaultTick   = 50 * time.Millisecond
)

// Round runs the countdown loop for one secret.
// Out must tolerate carriage-return redraws (raw mode); In carries digit
// characters '0'..'9' and may be closed by the producer at any time.
type Round struct {
	Secret  game.Digits
	In      <-chan byte
	Out     io.Writer
	OnStop  func()      // raised exactly once, on any terminal outcome
	History history.Log // optional attempt log

	// Budget is the per-guess countdown; Tick the inter-poll sleep.
	// Zero values take the package defaults.
	Budget time.Duration
	Tick   time.Duration
}

// Run drives the round to completion and reports the outcome.
// A rendering failure aborts the round and is returned as an error; a closed
// input channel just leaves the countdown to expire.
func (r *Round) Run() (game.Result, error) {
	budget, tick := r.Budget, r.Tick
	if budget <= 0 {
		budget = defaultBudget
	}
	if tick <= 0 {
		tick = defaultTick
	}

	level := len(r.Secret)
	entered := make(game.Digits, 0, level)
	anchor := time.Now()
	attempts := 0

	for {
		elapsed := time.Since(anchor)
		if elapsed >= budget {
			r.signalStop()
			return game.Result{Outcome: game.Lost, Attempts: attempts}, nil
		}
		remaining := int((budget - elapsed + time.Second - 1) / time.Second)

	drain:
		for len(entered) < level {
			select {
			case b, ok := <-r.In:
				if !ok {
					// Input source died; keep counting down.
					break drain
				}
				entered = append(entered, b-'0')
			default:
				break drain
			}
		}

		_, err := fmt.Fprintf(r.Out, "\r[%02ds] Insert %d characters %s",
			remaining, level-len(entered), entered.Dashed())
		if err != nil {
			r.signalStop()
			return game.Result{}, fmt.Errorf("render status line: %w", err)
		}

		if len(entered) == level {
			hits, blows := game.Score(r.Secret, entered)
			if hits == level {
				if _, err := fmt.Fprintf(r.Out, "\r\n = You won in %d attempts = \r\n", attempts); err != nil {
					r.signalStop()
					return game.Result{}, fmt.Errorf("render win line: %w", err)
				}
				r.signalStop()
				return game.Result{Outcome: game.Won, Attempts: attempts}, nil
			}

			attempts++
			if r.History != nil {
				guess := make(game.Digits, level)
				copy(guess, entered)
				r.History.Record(game.Attempt{Guess: guess, Hits: hits, Blows: blows})
			}
			if _, err := fmt.Fprintf(r.Out, "\r\n✅ HIT: %d, ❓ BLOW: %d\r\n\r\n", hits, blows); err != nil {
				r.signalStop()
				return game.Result{}, fmt.Errorf("render score line: %w", err)
			}
			anchor = time.Now()
			entered = entered[:0]
		}

		time.Sleep(tick)
	}
}

func (r *Round) signalStop() {
	if r.OnStop != nil {
		r.OnStop()
	}
}
