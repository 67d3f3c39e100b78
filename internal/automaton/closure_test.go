package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSilentClosure(t *testing.T) {
	n, err := NewNFA("abc", 2)
	require.NoError(t, err)

	start := n.singleton(n.Start())
	closure := n.SilentClosure(start)
	assert.Equal(t, []NFAState{{0, 0}, {1, 1}, {2, 2}}, closure.States())

	// The input set is left alone.
	assert.Equal(t, []NFAState{{0, 0}}, start.States())

	// Closing twice changes nothing.
	assert.True(t, closure.Equal(n.SilentClosure(closure)))
}

func TestSilentClosure_BudgetSpent(t *testing.T) {
	n, err := NewNFA("abc", 1)
	require.NoError(t, err)

	set := n.singleton(NFAState{1, 1})
	assert.Equal(t, []NFAState{{1, 1}}, n.SilentClosure(set).States())
}

func TestMove(t *testing.T) {
	n, err := NewNFA("ab", 1)
	require.NoError(t, err)
	start := n.SilentClosure(n.singleton(n.Start()))
	require.Equal(t, []NFAState{{0, 0}, {1, 1}}, start.States())

	assert.Equal(t, []NFAState{{0, 1}, {1, 0}, {1, 1}, {2, 1}}, n.Move(start, Exact('a')).States())
	assert.Equal(t, []NFAState{{0, 1}, {1, 1}, {2, 1}}, n.Move(start, Exact('b')).States())
	assert.Equal(t, []NFAState{{0, 1}, {1, 1}}, n.Move(start, Exact('z')).States())
	assert.Equal(t, []NFAState{{0, 1}, {1, 1}}, n.Move(start, Wildcard()).States())
	assert.True(t, n.Move(start, Silent()).Empty())
}

func TestSymbolsAndWildcards(t *testing.T) {
	n, err := NewNFA("aba", 1)
	require.NoError(t, err)
	start := n.SilentClosure(n.singleton(n.Start()))

	assert.Equal(t, []rune{'a', 'b'}, n.symbols(start))
	assert.True(t, n.hasWildcard(start))
	assert.False(t, n.hasWildcard(n.singleton(NFAState{3, 1})))
}

func TestStateSet_Key(t *testing.T) {
	n, err := NewNFA("abcd", 2)
	require.NoError(t, err)

	x := n.newSet()
	x.Add(NFAState{3, 1})
	x.Add(NFAState{0, 0})
	y := n.newSet()
	y.Add(NFAState{0, 0})
	y.Add(NFAState{3, 1})

	assert.Equal(t, x.Key(), y.Key(), "insertion order must not matter")
	assert.True(t, x.Equal(y))

	y.Add(NFAState{4, 2})
	assert.NotEqual(t, x.Key(), y.Key())
	assert.False(t, y.Add(NFAState{4, 2}), "second add reports existing member")
	assert.Equal(t, 3, y.Len())
	assert.True(t, x.Intersects(y))
	assert.Equal(t, "{(0,0) (3,1) (4,2)}", y.String())
}
