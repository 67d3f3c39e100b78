package automaton

import "github.com/cockroachdb/errors"

// MaxDFAStates is the state limit callers typically pass to WithStateLimit.
const MaxDFAStates = 1 << 16

var (
	ErrInvalidThreshold      = errors.New("invalid edit distance threshold")
	ErrDFAStateLimitExceeded = errors.New("DFA state limit exceeded during construction")
)

// NewLevenshteinAutomaton returns a DFA accepting the strings within k
// edits of pattern. Edits are counted on code points.
func NewLevenshteinAutomaton(pattern string, k int, opts ...Option) (*DFA, error) {
	n, err := NewNFA(pattern, k)
	if err != nil {
		return nil, err
	}
	return Determinize(n, opts...)
}
