package automaton

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// NFA is the nondeterministic edit-distance automaton for one pattern and
// threshold. States are (position, errors used) pairs; the transition
// relation is set-valued even though this construction never produces two
// destinations for the same (state, edge) key.
type NFA struct {
	pattern     []rune
	k           int
	start       NFAState
	transitions map[NFAState]map[Edge]StateSet
	accepting   StateSet
}

// NewNFA builds the edit-distance NFA for the code points of pattern.
func NewNFA(pattern string, k int) (*NFA, error) {
	return BuildNFA([]rune(pattern), k)
}

// BuildNFA builds the NFA accepting every string within k edits of pattern.
//
// For each position i and error budget e, with c = pattern[i]:
//
//	(i,e) --c--> (i+1,e)
//	(i,e) --*--> (i,e+1)     consumes a symbol, keeps the position
//	(i,e) --ε--> (i+1,e+1)   skips a pattern symbol
//	(i,e) --*--> (i+1,e+1)   consumes a symbol in place of a pattern symbol
//
// The last three exist only while e < k. Trailing input past the pattern
// costs one error per symbol, and (len(pattern), e) accepts for every e.
func BuildNFA(pattern []rune, k int) (*NFA, error) {
	if k < 0 {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidThreshold, "threshold %d", k),
			"the edit distance threshold must be zero or positive")
	}

	n := &NFA{
		pattern:     slices.Clone(pattern),
		k:           k,
		start:       NFAState{Pos: 0, Errs: 0},
		transitions: make(map[NFAState]map[Edge]StateSet),
	}
	n.accepting = n.newSet()

	for i, c := range n.pattern {
		for e := 0; e <= k; e++ {
			src := NFAState{Pos: i, Errs: e}
			n.addTransition(src, Exact(c), NFAState{Pos: i + 1, Errs: e})
			if e < k {
				n.addTransition(src, Wildcard(), NFAState{Pos: i, Errs: e + 1})
				n.addTransition(src, Silent(), NFAState{Pos: i + 1, Errs: e + 1})
				n.addTransition(src, Wildcard(), NFAState{Pos: i + 1, Errs: e + 1})
			}
		}
	}

	end := len(n.pattern)
	for e := 0; e <= k; e++ {
		if e < k {
			n.addTransition(NFAState{Pos: end, Errs: e}, Wildcard(), NFAState{Pos: end, Errs: e + 1})
		}
		n.accepting.Add(NFAState{Pos: end, Errs: e})
	}
	return n, nil
}

func (n *NFA) addTransition(src NFAState, edge Edge, dst NFAState) {
	out, ok := n.transitions[src]
	if !ok {
		out = make(map[Edge]StateSet)
		n.transitions[src] = out
	}
	dests, ok := out[edge]
	if !ok {
		dests = n.newSet()
		out[edge] = dests
	}
	dests.Add(dst)
}

// newSet returns an empty set sized for this automaton.
func (n *NFA) newSet() StateSet {
	return newStateSet(n.k+1, n.NumStates())
}

func (n *NFA) singleton(s NFAState) StateSet {
	set := n.newSet()
	set.Add(s)
	return set
}

// Start returns (0,0).
func (n *NFA) Start() NFAState { return n.start }

// Pattern returns the pattern the NFA was built for.
func (n *NFA) Pattern() string { return string(n.pattern) }

// Threshold returns k.
func (n *NFA) Threshold() int { return n.k }

// NumStates is the size of the state space, (len(pattern)+1)*(k+1).
func (n *NFA) NumStates() int {
	return (len(n.pattern) + 1) * (n.k + 1)
}

// IsAccepting reports whether s is (len(pattern), e) for some e.
func (n *NFA) IsAccepting(s NFAState) bool {
	return n.accepting.Contains(s)
}

// Accepting returns the accepting states ordered by error count.
func (n *NFA) Accepting() []NFAState {
	return n.accepting.States()
}

// Destinations returns the states reached from s over exactly edge.
// The returned set must not be modified.
func (n *NFA) Destinations(s NFAState, edge Edge) StateSet {
	if dests, ok := n.transitions[s][edge]; ok {
		return dests
	}
	return n.newSet()
}

// Step returns the states reached from s by consuming r: the exact-symbol
// destinations plus every wildcard destination.
func (n *NFA) Step(s NFAState, r rune) StateSet {
	out := n.newSet()
	out.union(n.transitions[s][Exact(r)])
	out.union(n.transitions[s][Wildcard()])
	return out
}

// SilentStep returns the states reached from s without consuming input.
func (n *NFA) SilentStep(s NFAState) StateSet {
	return n.Destinations(s, Silent())
}

// Edges returns the labels leaving s, ordered exact, wildcard, silent.
func (n *NFA) Edges(s NFAState) []Edge {
	out := make([]Edge, 0, len(n.transitions[s]))
	for e := range n.transitions[s] {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Edge) int {
		switch {
		case edgeLess(a, b):
			return -1
		case edgeLess(b, a):
			return 1
		}
		return 0
	})
	return out
}

// Match reports whether input is accepted by walking the NFA directly,
// backtracking over every branch, and returns the smallest error count of
// an accepting path. It is exponential in the worst case and only serves
// as a cross-check for the determinized automaton.
func (n *NFA) Match(input string) (bool, int) {
	best := n.match(n.start, []rune(input))
	if best < 0 {
		return false, 0
	}
	return true, best
}

// match returns the minimum errors of an accepting path from s, or -1.
func (n *NFA) match(s NFAState, input []rune) int {
	best := -1
	keep := func(e int) {
		if e >= 0 && (best < 0 || e < best) {
			best = e
		}
	}

	if len(input) == 0 && n.IsAccepting(s) {
		keep(s.Errs)
	}
	if len(input) > 0 {
		for _, next := range n.Step(s, input[0]).States() {
			keep(n.match(next, input[1:]))
		}
	}
	for _, next := range n.SilentStep(s).States() {
		keep(n.match(next, input))
	}
	return best
}
