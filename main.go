package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/nmoliveira/hitblow/internal/game"
	"github.com/nmoliveira/hitblow/internal/round"
)

const ansiClear = "\033[2J\033[H"

const banner = `
Try to guess the mystery number!
=================================

	Choose the level and start typing your guess, but be aware that you only have 10s.

	What are "hits" and "blows"?
	- hits means that you've correctly guessed a digit in the correct position
	- blows means that you've guessed a digit correctly but in the wrong position.

	Keep guessing until you get it right before time runs out!`

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "error")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	fmt.Print(ansiClear)
	fmt.Println(banner)
	fmt.Printf("\n Choose a level between %d and %d, or enter 'q' to quit: ", game.MinLevel, game.MaxLevel)

	line, err := readLine(os.Stdin)
	if err != nil {
		fmt.Println("\nNo input, bye.")
		os.Exit(1)
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "q" {
		fmt.Println("Thanks for playing!")
		return
	}
	level, err := strconv.Atoi(trimmed)
	if err != nil {
		fmt.Printf("Invalid input. Please enter a number between %d and %d, or 'q' to quit.\n", game.MinLevel, game.MaxLevel)
		os.Exit(1)
	}

	summary, err := round.Play(level)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	switch summary.Result.Outcome {
	case game.Won:
		fmt.Println("\n" + color.Ize(color.Green, "🎉 Congratulations!"))
	case game.Lost:
		fmt.Println("\n" + color.Ize(color.Red, "You lose 💣"))
		fmt.Printf("The number was %s.\n", summary.Secret)
	}
	printAttempts(summary.Attempts)
}

// readLine reads up to a newline one byte at a time, so nothing typed ahead
// is stranded in a discarded buffer before the round reads stdin directly.
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return sb.String(), nil
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
	}
}

// printAttempts replays the failed guesses so the player can review them.
func printAttempts(attempts []game.Attempt) {
	if len(attempts) == 0 {
		return
	}
	fmt.Println("\nYour attempts:")
	for i, a := range attempts {
		fmt.Printf("  %2d. %s  HIT: %d  BLOW: %d\n", i+1, a.Guess.Dashed(), a.Hits, a.Blows)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
