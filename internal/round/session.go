// internal/round/session.go
//
// One-shot session façade over the round loop.
// Play wires the process terminal, the secret, the background reader and the
// attempt log together, and guarantees the terminal is restored to cooked
// mode on every exit path.

package round

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/nmoliveira/hitblow/internal/game"
	"github.com/nmoliveira/hitblow/internal/history"
	"github.com/nmoliveira/hitblow/internal/input"
)

// ErrTerminalUnavailable means stdin is not a terminal or raw mode could not
// be entered.
var ErrTerminalUnavailable = errors.New("terminal unavailable")

// Summary is everything the caller needs to report a finished round.
type Summary struct {
	Result   game.Result
	Secret   game.Digits
	Attempts []game.Attempt
}

// Play runs one round at the given level on the process terminal.
func Play(level int) (Summary, error) {
	secret, err := game.NewSecret(level, nil)
	if err != nil {
		return Summary{}, err
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return Summary{}, ErrTerminalUnavailable
	}
	fd := int(os.Stdin.Fd())
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	defer func() { _ = term.Restore(fd, prev) }()

	reader := input.New(os.Stdin)
	reader.Start()
	log.Debug().Int("level", level).Msg("round started")

	hist := history.NewMemoryLog()
	r := &Round{
		Secret:  secret,
		In:      reader.Digits(),
		Out:     os.Stdout,
		OnStop:  reader.Stop,
		History: hist,
	}
	res, runErr := r.Run()

	// Best-effort join: the reader may be parked inside a blocking read and
	// only exits on the next keystroke or EOF.
	select {
	case <-reader.Done():
	case <-time.After(200 * time.Millisecond):
	}

	if runErr != nil {
		log.Error().Err(runErr).Msg("round aborted")
		return Summary{}, runErr
	}
	log.Debug().
		Str("outcome", string(res.Outcome)).
		Int("attempts", res.Attempts).
		Msg("round finished")
	return Summary{Result: res, Secret: secret, Attempts: hist.All()}, nil
}
