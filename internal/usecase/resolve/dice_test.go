package resolve

import "testing"

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"hello", "hello", 1},
		{"", "", 1},
		{"a", "b", 0},
		{"abc", "xyz", 0},
		{"night", "nacht", 0.25},
		{"french", "quebec", 0},
		{"healed", "sealed", 0.8},
		{"hello world", "helloworld", 0.9999999999999999},
	}
	for _, tc := range tests {
		got := Similarity(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSimilarity_OneOnlyWhenIdentical(t *testing.T) {
	// Same bigram multiset {ab, bc, ca} but different text.
	if got := Similarity("abca", "bcab"); got >= 1 {
		t.Errorf("distinct strings scored %v", got)
	}
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"how are you", "how old are you"},
		{"what is your name", "what's your name"},
		{"xkqj", "hello"},
		{"ünïcödé", "unicode"},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		if s < 0 || s > 1 {
			t.Errorf("Similarity(%q, %q) = %v out of range", p[0], p[1], s)
		}
		if s != Similarity(p[1], p[0]) {
			t.Errorf("Similarity not symmetric for %q, %q", p[0], p[1])
		}
	}
}

func TestSimilarity_DegradesWithEdits(t *testing.T) {
	base := "tell me a joke"
	one := Similarity(base, "tell me a jokes")
	two := Similarity(base, "tell me any jokes")
	if one <= two {
		t.Errorf("expected fewer edits to score higher: %v vs %v", one, two)
	}
}
