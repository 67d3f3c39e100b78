package automaton

import "slices"

// SilentClosure returns the smallest superset of set closed under silent
// edges. The input set is not modified.
func (n *NFA) SilentClosure(set StateSet) StateSet {
	closure := n.newSet()
	closure.union(set)

	stack := set.States()
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range n.SilentStep(s).States() {
			// Add refuses states already in the closure, so each state is
			// pushed at most once even if silent edges were to cycle.
			if closure.Add(next) {
				stack = append(stack, next)
			}
		}
	}
	return closure
}

// Move returns the silent closure of every state reachable from set over
// edge. Exact edges also follow wildcard edges since a wildcard accepts any
// symbol. Silent edges consume nothing and yield the empty set.
func (n *NFA) Move(set StateSet, edge Edge) StateSet {
	out := n.newSet()
	if edge.IsSilent() {
		return out
	}
	for _, s := range set.States() {
		out.union(n.transitions[s][edge])
		if edge.IsExact() {
			out.union(n.transitions[s][Wildcard()])
		}
	}
	return n.SilentClosure(out)
}

// symbols returns the concrete symbols labelling any edge out of set, sorted.
func (n *NFA) symbols(set StateSet) []rune {
	var out []rune
	for _, s := range set.States() {
		for e := range n.transitions[s] {
			if r, ok := e.Symbol(); ok {
				out = append(out, r)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// hasWildcard reports whether any state in set has a wildcard edge.
func (n *NFA) hasWildcard(set StateSet) bool {
	for _, s := range set.States() {
		if _, ok := n.transitions[s][Wildcard()]; ok {
			return true
		}
	}
	return false
}

func (n *NFA) intersectsAccepting(set StateSet) bool {
	return set.Intersects(n.accepting)
}
