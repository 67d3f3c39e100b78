package automaton

import "slices"

// DFA is the determinized edit-distance automaton. Each node is a
// silent-closed subset of NFA states and is numbered by a State; DeadState
// stands for "no successor".
//
// Transitions come in two tables: explicit transitions keyed by a concrete
// symbol, and at most one default transition per node, taken for any
// symbol without an explicit entry. The graph may contain cycles.
//
// A DFA is immutable once Determinize returns and safe for concurrent use.
type DFA struct {
	pattern   []rune
	k         int
	start     State
	subsets   []StateSet // indexed by State; subsets[DeadState] is empty
	ids       map[string]State
	explicit  []map[rune]State
	defaults  []State
	accepting []bool
	alphabets [][]rune
	live      []bool
}

func newDFA(n *NFA) *DFA {
	d := &DFA{
		pattern: n.pattern,
		k:       n.k,
		ids:     make(map[string]State),
	}
	// Slot 0 is the dead state.
	d.subsets = append(d.subsets, n.newSet())
	d.explicit = append(d.explicit, nil)
	d.defaults = append(d.defaults, DeadState)
	d.accepting = append(d.accepting, false)
	return d
}

func (d *DFA) addState(set StateSet, accepting bool) State {
	id := State(len(d.subsets))
	d.subsets = append(d.subsets, set)
	d.ids[set.Key()] = id
	d.explicit = append(d.explicit, make(map[rune]State))
	d.defaults = append(d.defaults, DeadState)
	d.accepting = append(d.accepting, accepting)
	return id
}

func (d *DFA) lookup(set StateSet) (State, bool) {
	id, ok := d.ids[set.Key()]
	return id, ok
}

func (d *DFA) addTransition(src State, r rune, dst State) {
	d.explicit[src][r] = dst
}

func (d *DFA) setDefault(src, dst State) {
	d.defaults[src] = dst
}

// finish precomputes per-node alphabets and liveness.
func (d *DFA) finish() {
	d.alphabets = make([][]rune, len(d.subsets))
	for s, out := range d.explicit {
		if len(out) == 0 {
			continue
		}
		syms := make([]rune, 0, len(out))
		for r := range out {
			syms = append(syms, r)
		}
		slices.Sort(syms)
		d.alphabets[s] = syms
	}

	// A node is live if an accepting node is reachable from it. Walk the
	// reversed graph from every accepting node.
	reverse := make([][]State, len(d.subsets))
	for src := range d.subsets {
		for _, dst := range d.explicit[src] {
			reverse[dst] = append(reverse[dst], State(src))
		}
		if dst := d.defaults[src]; dst != DeadState {
			reverse[dst] = append(reverse[dst], State(src))
		}
	}
	d.live = make([]bool, len(d.subsets))
	var stack []State
	for s, ok := range d.accepting {
		if ok {
			d.live[s] = true
			stack = append(stack, State(s))
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, prev := range reverse[s] {
			if !d.live[prev] {
				d.live[prev] = true
				stack = append(stack, prev)
			}
		}
	}
}

func (d *DFA) valid(s State) bool {
	return s != DeadState && int(s) < len(d.subsets)
}

// Start returns the node for the silent closure of the NFA start state.
func (d *DFA) Start() State { return d.start }

// Pattern returns the pattern the DFA was built for.
func (d *DFA) Pattern() string { return string(d.pattern) }

// Threshold returns k.
func (d *DFA) Threshold() int { return d.k }

// NumStates returns the number of subsets, not counting DeadState.
func (d *DFA) NumStates() int { return len(d.subsets) - 1 }

// Next returns the explicit successor of s on r if there is one, otherwise
// the default successor, otherwise DeadState.
func (d *DFA) Next(s State, r rune) State {
	if !d.valid(s) {
		return DeadState
	}
	if next, ok := d.explicit[s][r]; ok {
		return next
	}
	return d.defaults[s]
}

// Step implements Automaton.
func (d *DFA) Step(s State, r rune) State { return d.Next(s, r) }

// IsAccepting reports whether the subset of s holds an accepting NFA state.
func (d *DFA) IsAccepting(s State) bool {
	return d.valid(s) && d.accepting[s]
}

// IsAccept implements Automaton.
func (d *DFA) IsAccept(s State) bool { return d.IsAccepting(s) }

// CanMatch reports whether an accepting state is reachable from s.
func (d *DFA) CanMatch(s State) bool {
	return d.valid(s) && d.live[s]
}

// Alphabet returns the symbols with an explicit transition out of s, sorted.
func (d *DFA) Alphabet(s State) []rune {
	if !d.valid(s) {
		return nil
	}
	return slices.Clone(d.alphabets[s])
}

func (d *DFA) alphabet(s State) []rune {
	if !d.valid(s) {
		return nil
	}
	return d.alphabets[s]
}

// Default returns the default successor of s, if one was recorded.
func (d *DFA) Default(s State) (State, bool) {
	if !d.valid(s) || d.defaults[s] == DeadState {
		return DeadState, false
	}
	return d.defaults[s], true
}

// Subset returns the NFA states making up s.
func (d *DFA) Subset(s State) StateSet {
	if !d.valid(s) {
		return d.subsets[DeadState].Clone()
	}
	return d.subsets[s].Clone()
}

// Accepts reports whether the automaton accepts input.
func (d *DFA) Accepts(input string) bool {
	return Run(d, input)
}

// Equal reports whether d and o have the same subsets, the same accepting
// subsets and the same transitions between subsets, regardless of how the
// nodes happen to be numbered.
func (d *DFA) Equal(o *DFA) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.subsets) != len(o.subsets) {
		return false
	}
	key := func(a *DFA, s State) string { return a.subsets[s].Key() }
	if key(d, d.start) != key(o, o.start) {
		return false
	}
	for s := 1; s < len(d.subsets); s++ {
		oid, ok := o.ids[key(d, State(s))]
		if !ok || d.accepting[s] != o.accepting[oid] {
			return false
		}
		if len(d.explicit[s]) != len(o.explicit[oid]) {
			return false
		}
		for r, dst := range d.explicit[s] {
			odst, ok := o.explicit[oid][r]
			if !ok || key(d, dst) != key(o, odst) {
				return false
			}
		}
		if key(d, d.defaults[s]) != key(o, o.defaults[oid]) {
			return false
		}
	}
	return true
}
