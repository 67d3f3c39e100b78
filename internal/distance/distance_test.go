package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"food", "fxod", 1},
		{"acd", "abccd", 2},
		{"ab", "abcd", 2},
		{"ab", "xy", 2},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"dcba", "abcd", 4},
		{"café", "cafe", 1},
		{"日本語", "日本", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestWithin(t *testing.T) {
	words := []string{"", "a", "ab", "abd", "acd", "abccd", "abcde", "aabcde", "abed", "a@cd", "dcba", "abcd"}
	for _, a := range words {
		for _, b := range words {
			d := Levenshtein(a, b)
			for k := 0; k <= 4; k++ {
				assert.Equal(t, d <= k, Within(a, b, k), "Within(%q, %q, %d) with distance %d", a, b, k, d)
			}
		}
	}
}

func TestWithin_NegativeThreshold(t *testing.T) {
	assert.False(t, Within("", "", -1))
}
