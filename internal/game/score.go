// internal/game/score.go
//
// Guess scoring for the hits-and-blows engine.
//
// Pass 1:
//   - Count exact positional matches as hits and mark the matched secret
//     digit values.
//
// Pass 2:
//   - For each non-hit guess position: award a blow if the digit occurs
//     somewhere in the secret and was not consumed by a hit.
//
// Secret digits are pairwise distinct, so a per-value mark table is enough to
// track which secret digits a hit already consumed.

package game

// Score evaluates a guess against a secret of the same length.
// Returns the number of hits (right digit, right place) and blows (right
// digit, wrong place). It is pure and never mutates its arguments.
func Score(secret, guess Digits) (hits, blows int) {
	var matched [10]bool

	// First pass: hits, marking the consumed secret digits by value.
	for i, s := range secret {
		if s == guess[i] {
			hits++
			matched[s] = true
		}
	}

	// Second pass: blows for the remaining guess positions.
	for i, g := range guess {
		if secret[i] == g {
			continue
		}
		if matched[g] {
			continue
		}
		if contains(secret, g) {
			blows++
		}
	}
	return hits, blows
}

// contains reports whether d holds the value v.
func contains(d Digits, v byte) bool {
	for _, x := range d {
		if x == v {
			return true
		}
	}
	return false
}
