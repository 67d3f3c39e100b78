package automaton

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoFuzzy/internal/distance"
)

func TestBuildNFA_AcceptingStates(t *testing.T) {
	for _, pattern := range []string{"", "a", "ab", "food", "abccd"} {
		for k := 0; k <= 3; k++ {
			n, err := NewNFA(pattern, k)
			require.NoError(t, err)

			accepting := n.Accepting()
			require.Len(t, accepting, k+1, "pattern %q k=%d", pattern, k)
			for e, s := range accepting {
				assert.Equal(t, NFAState{Pos: len([]rune(pattern)), Errs: e}, s)
			}
		}
	}
}

func TestBuildNFA_NegativeThreshold(t *testing.T) {
	_, err := BuildNFA([]rune("ab"), -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidThreshold))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestBuildNFA_Edges(t *testing.T) {
	n, err := NewNFA("ab", 1)
	require.NoError(t, err)

	s00 := NFAState{0, 0}
	assert.Equal(t, []Edge{Exact('a'), Wildcard(), Silent()}, n.Edges(s00))
	assert.Equal(t, []NFAState{{1, 0}}, n.Destinations(s00, Exact('a')).States())
	assert.Equal(t, []NFAState{{0, 1}, {1, 1}}, n.Destinations(s00, Wildcard()).States())
	assert.Equal(t, []NFAState{{1, 1}}, n.Destinations(s00, Silent()).States())

	// The error budget is spent: only the exact edge remains.
	assert.Equal(t, []Edge{Exact('a')}, n.Edges(NFAState{0, 1}))

	// Trailing input past the pattern costs an error.
	assert.Equal(t, []Edge{Wildcard()}, n.Edges(NFAState{2, 0}))
	assert.Equal(t, []NFAState{{2, 1}}, n.Destinations(NFAState{2, 0}, Wildcard()).States())
	assert.Empty(t, n.Edges(NFAState{2, 1}))
}

func TestBuildNFA_Shape(t *testing.T) {
	n, err := NewNFA("abc", 2)
	require.NoError(t, err)

	assert.Equal(t, "abc", n.Pattern())
	assert.Equal(t, 2, n.Threshold())
	assert.Equal(t, 12, n.NumStates())
	assert.Equal(t, NFAState{0, 0}, n.Start())
	assert.True(t, n.IsAccepting(NFAState{3, 2}))
	assert.False(t, n.IsAccepting(NFAState{2, 0}))
}

func TestNFA_StepFallsBackToWildcard(t *testing.T) {
	n, err := NewNFA("ab", 1)
	require.NoError(t, err)

	s00 := NFAState{0, 0}
	assert.Equal(t, []NFAState{{0, 1}, {1, 0}, {1, 1}}, n.Step(s00, 'a').States())
	assert.Equal(t, []NFAState{{0, 1}, {1, 1}}, n.Step(s00, 'z').States())
	assert.Empty(t, n.Step(NFAState{0, 1}, 'z').States())
}

func TestNFA_Match(t *testing.T) {
	n, err := NewNFA("ab", 1)
	require.NoError(t, err)

	tests := []struct {
		input string
		ok    bool
		errs  int
	}{
		{"ab", true, 0},
		{"a", true, 1},
		{"b", true, 1},
		{"abc", true, 1},
		{"ax", true, 1},
		{"abcd", false, 0},
		{"xy", false, 0},
	}
	for _, tt := range tests {
		ok, errs := n.Match(tt.input)
		assert.Equal(t, tt.ok, ok, "Match(%q)", tt.input)
		assert.Equal(t, tt.errs, errs, "Match(%q) errors", tt.input)
	}
}

func TestNFA_MatchAgreesWithOracle(t *testing.T) {
	patterns := []string{"", "a", "ab", "acd", "food"}
	inputs := []string{"", "a", "b", "ab", "ba", "acd", "abcd", "fod", "food", "fxod", "foods", "xy"}
	for _, p := range patterns {
		for k := 0; k <= 2; k++ {
			n, err := NewNFA(p, k)
			require.NoError(t, err)
			for _, in := range inputs {
				d := distance.Levenshtein(p, in)
				ok, errs := n.Match(in)
				require.Equal(t, d <= k, ok, "pattern %q k=%d input %q", p, k, in)
				if ok {
					assert.Equal(t, d, errs, "pattern %q k=%d input %q", p, k, in)
				}
			}
		}
	}
}
