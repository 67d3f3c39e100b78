package pairs

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoFuzzy/internal/automaton"
	"GoFuzzy/internal/testutil"
)

func newEvaluator(t *testing.T, k int) *Evaluator {
	t.Helper()
	e, err := NewEvaluator(Options{Threshold: k, Workers: 4, CacheSize: 16})
	require.NoError(t, err)
	return e
}

func TestEnumerate(t *testing.T) {
	assert.Nil(t, Enumerate(nil))
	assert.Nil(t, Enumerate([]string{"solo"}))

	got := Enumerate([]string{"a", "b", "c"})
	assert.Equal(t, []Pair{{"a", "b"}, {"a", "c"}, {"b", "c"}}, got)

	assert.Len(t, Enumerate(testutil.SampleWords()), 13*12/2)
}

func TestNewEvaluator_NegativeThreshold(t *testing.T) {
	_, err := NewEvaluator(Options{Threshold: -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, automaton.ErrInvalidThreshold))
}

func TestCompare(t *testing.T) {
	e := newEvaluator(t, 1)

	r, err := e.Compare("food", "fxod")
	require.NoError(t, err)
	assert.True(t, r.Matched)
	assert.Equal(t, "fod", r.Witness)
	assert.Equal(t, 1, r.Distance)
	assert.True(t, r.WithinK)
	assert.True(t, r.Consistent)
	assert.True(t, r.Agrees())

	// Two edits apart but sharing "accd": a match the oracle calls out of
	// range for k, yet within the 2k bound.
	r, err = e.Compare("acd", "abccd")
	require.NoError(t, err)
	assert.True(t, r.Matched)
	assert.Equal(t, "accd", r.Witness)
	assert.Equal(t, 2, r.Distance)
	assert.False(t, r.WithinK)
	assert.True(t, r.Bound)
	assert.True(t, r.Consistent)
	assert.False(t, r.Agrees())

	r, err = e.Compare("dcba", "abcd")
	require.NoError(t, err)
	assert.False(t, r.Matched)
	assert.Empty(t, r.Witness)
	assert.Equal(t, 4, r.Distance)
	assert.True(t, r.Consistent)
}

func TestCompare_ZeroThreshold(t *testing.T) {
	e := newEvaluator(t, 0)

	r, err := e.Compare("same", "same")
	require.NoError(t, err)
	assert.True(t, r.Matched)
	assert.True(t, r.Agrees())

	r, err = e.Compare("food", "fxod")
	require.NoError(t, err)
	assert.False(t, r.Matched)
	assert.True(t, r.Agrees())
}

func TestAutomaton_Cached(t *testing.T) {
	e := newEvaluator(t, 1)

	first, err := e.Automaton("banana")
	require.NoError(t, err)
	second, err := e.Automaton("banana")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestAutomaton_StateLimit(t *testing.T) {
	e, err := NewEvaluator(Options{Threshold: 2, StateLimit: 2})
	require.NoError(t, err)

	_, err = e.Compare("abcdef", "abcdeg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, automaton.ErrDFAStateLimitExceeded))
}

func TestAutomaton_PatternTooLong(t *testing.T) {
	e, err := NewEvaluator(Options{Threshold: 3, MaxPatternRunes: 8})
	require.NoError(t, err)

	_, err = e.Automaton("abcdefgh")
	require.NoError(t, err)
	// Runes, not bytes: eight accented letters fit.
	_, err = e.Automaton("éééééééé")
	require.NoError(t, err)

	_, err = e.Compare("abcdefghi", "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPatternTooLong))
	assert.NotContains(t, err.Error(), "abcdefghi")
	assert.Equal(t, 2, e.cache.Len())
}

func TestCheckLength(t *testing.T) {
	assert.NoError(t, CheckLength(0, "anything goes when unlimited"))
	assert.NoError(t, CheckLength(3, "abc", "", "xyz"))
	assert.ErrorIs(t, CheckLength(3, "abc", "abcd"), ErrPatternTooLong)
}

func TestCompareAll(t *testing.T) {
	words := testutil.SampleWords()
	all := Enumerate(words)

	for k := 0; k <= 2; k++ {
		e := newEvaluator(t, k)
		results, err := e.CompareAll(context.Background(), all)
		require.NoError(t, err)
		require.Len(t, results, len(all))

		for i, r := range results {
			assert.Equal(t, all[i], r.Pair, "results keep input order")
			assert.Equal(t, k, r.Threshold)
			assert.True(t, r.Consistent, "%q/%q k=%d", r.A, r.B, k)
		}

		s := Summarize(results)
		assert.Equal(t, len(all), s.Total)
		assert.Zero(t, s.Inconsistent)
		assert.GreaterOrEqual(t, s.Matched, s.WithinK, "every pair within k matches")
	}
}

func TestCompareAll_Cancelled(t *testing.T) {
	e := newEvaluator(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.CompareAll(ctx, Enumerate(testutil.SampleWords()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareAll_PropagatesErrors(t *testing.T) {
	e, err := NewEvaluator(Options{Threshold: 2, StateLimit: 2, Workers: 2})
	require.NoError(t, err)

	_, err = e.CompareAll(context.Background(), []Pair{{"abcdef", "abcdeg"}})
	assert.ErrorIs(t, err, automaton.ErrDFAStateLimitExceeded)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Result{
		{Matched: true, WithinK: true, Consistent: true},
		{Matched: true, WithinK: false, Consistent: true},
		{Matched: false, WithinK: true, Consistent: false},
	})
	assert.Equal(t, Summary{Total: 3, Matched: 2, WithinK: 2, Agreed: 1, Inconsistent: 1}, s)
}
