package resolve

import (
	"math"
	"unicode"
)

// Similarity returns the Sørensen-Dice coefficient of the character bigrams of a and b,
// ignoring whitespace. Identical strings score 1; distinct strings never do.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	x := stripSpace(a)
	y := stripSpace(b)
	if len(x) < 2 || len(y) < 2 {
		return 0
	}

	bigrams := make(map[[2]rune]int, len(x)-1)
	for i := 0; i < len(x)-1; i++ {
		bigrams[[2]rune{x[i], x[i+1]}]++
	}

	intersection := 0
	for i := 0; i < len(y)-1; i++ {
		bg := [2]rune{y[i], y[i+1]}
		if n := bigrams[bg]; n > 0 {
			bigrams[bg] = n - 1
			intersection++
		}
	}

	score := 2 * float64(intersection) / float64(len(x)+len(y)-2)
	if score >= 1 {
		// Same bigram multiset, different text.
		return math.Nextafter(1, 0)
	}
	return score
}

func stripSpace(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}
