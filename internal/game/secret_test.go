package game

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestNewSecretAllLevels(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for level := MinLevel; level <= MaxLevel; level++ {
		t.Run(fmt.Sprintf("level=%d", level), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				s, err := NewSecret(level, rng)
				if err != nil {
					t.Fatalf("NewSecret(%d) failed: %v", level, err)
				}
				if len(s) != level {
					t.Fatalf("secret length = %d, want %d", len(s), level)
				}
				var seen [10]bool
				for _, v := range s {
					if v > 9 {
						t.Fatalf("digit out of range: %d", v)
					}
					if seen[v] {
						t.Fatalf("duplicate digit %d in secret %s", v, s)
					}
					seen[v] = true
				}
			}
		})
	}
}

func TestNewSecretInvalidLevel(t *testing.T) {
	for _, level := range []int{-1, 0, 2, 10, 42} {
		if _, err := NewSecret(level, nil); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("NewSecret(%d): got %v, want ErrInvalidLevel", level, err)
		}
	}
}

func TestNewSecretLeadingZeroIsRareButPossible(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const draws = 3000
	leading := 0
	for i := 0; i < draws; i++ {
		s, err := NewSecret(MaxLevel, rng)
		if err != nil {
			t.Fatalf("NewSecret failed: %v", err)
		}
		if s[0] == 0 {
			leading++
		}
	}
	// Zero lands at the front with probability 1/10.
	if leading == 0 {
		t.Fatal("leading zero never occurred; zero placement looks biased")
	}
	if leading > draws/5 {
		t.Fatalf("leading zero occurred %d/%d times; zero placement looks biased", leading, draws)
	}
}
