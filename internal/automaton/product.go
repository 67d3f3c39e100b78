package automaton

import "slices"

type statePair struct {
	a, b State
}

// productStep links a discovered pair to the pair and symbol it came from.
type productStep struct {
	prev statePair
	sym  rune
	root bool
}

// MatchesWithinDistance reports whether a and b accept a common string.
// Both automata are expected to be built with the same threshold.
func MatchesWithinDistance(a, b *DFA) bool {
	_, ok := SharedString(a, b)
	return ok
}

// SharedString searches the product of a and b breadth-first and returns a
// shortest string, over symbols both sides name explicitly, that both
// accept.
//
// Only pairs reachable through the intersection of the two explicit
// alphabets are explored. Every pair is visited once; default transitions
// commonly loop, so the search would not terminate without the visited set.
func SharedString(a, b *DFA) (string, bool) {
	start := statePair{a.Start(), b.Start()}
	visited := map[statePair]productStep{start: {root: true}}
	frontier := []statePair{start}

	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]
		if a.IsAccepting(p.a) && b.IsAccepting(p.b) {
			return witness(visited, p), true
		}
		for _, sym := range intersectSorted(a.alphabet(p.a), b.alphabet(p.b)) {
			next := statePair{a.Next(p.a, sym), b.Next(p.b, sym)}
			if next.a == DeadState || next.b == DeadState {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = productStep{prev: p, sym: sym}
			frontier = append(frontier, next)
		}
	}
	return "", false
}

func witness(visited map[statePair]productStep, end statePair) string {
	var out []rune
	for p := end; !visited[p].root; p = visited[p].prev {
		out = append(out, visited[p].sym)
	}
	slices.Reverse(out)
	return string(out)
}

// intersectSorted returns the symbols present in both sorted slices.
func intersectSorted(x, y []rune) []rune {
	var out []rune
	for i, j := 0, 0; i < len(x) && j < len(y); {
		switch {
		case x[i] < y[j]:
			i++
		case x[i] > y[j]:
			j++
		default:
			out = append(out, x[i])
			i++
			j++
		}
	}
	return out
}
