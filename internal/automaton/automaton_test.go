package automaton

import (
	"testing"
)

// runAutomaton feeds a string through an automaton symbol-by-symbol and returns whether it accepts.
func runAutomaton(a Automaton, input string) bool {
	state := a.Start()
	for _, r := range input {
		state = a.Step(state, r)
		if state == DeadState {
			return false
		}
	}
	return a.IsAccept(state)
}

func mustAutomaton(t testing.TB, pattern string, k int) *DFA {
	t.Helper()
	a, err := NewLevenshteinAutomaton(pattern, k)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

// --- Levenshtein Automaton Tests ---

func TestLevenshteinAutomaton_ExactMatch(t *testing.T) {
	a := mustAutomaton(t, "hello", 1)

	if !runAutomaton(a, "hello") {
		t.Error("should accept exact match (0 edits)")
	}
}

func TestLevenshteinAutomaton_Substitution(t *testing.T) {
	a := mustAutomaton(t, "hello", 1)

	for _, s := range []string{"hallo", "jello", "helli", "hexlo"} {
		if !runAutomaton(a, s) {
			t.Errorf("should accept 1 substitution %q", s)
		}
	}
}

func TestLevenshteinAutomaton_Insertion(t *testing.T) {
	a := mustAutomaton(t, "hello", 1)

	for _, s := range []string{"helloo", "xhello", "helxlo"} {
		if !runAutomaton(a, s) {
			t.Errorf("should accept 1 insertion %q", s)
		}
	}
}

func TestLevenshteinAutomaton_Deletion(t *testing.T) {
	a := mustAutomaton(t, "hello", 1)

	for _, s := range []string{"hell", "ello", "helo"} {
		if !runAutomaton(a, s) {
			t.Errorf("should accept 1 deletion %q", s)
		}
	}
}

func TestLevenshteinAutomaton_Rejects(t *testing.T) {
	a := mustAutomaton(t, "hello", 1)

	for _, s := range []string{"world", "he", "hellooo", "ehllo", ""} {
		if runAutomaton(a, s) {
			t.Errorf("should reject %q", s)
		}
	}
}

func TestLevenshteinAutomaton_Distance0(t *testing.T) {
	a := mustAutomaton(t, "cat", 0)

	if !runAutomaton(a, "cat") {
		t.Error("should accept exact match with distance 0")
	}
	if runAutomaton(a, "bat") {
		t.Error("should reject 1 edit with distance 0")
	}
	if runAutomaton(a, "ca") {
		t.Error("should reject a prefix with distance 0")
	}
}

func TestLevenshteinAutomaton_Distance2(t *testing.T) {
	a := mustAutomaton(t, "test", 2)

	for _, s := range []string{"tset", "tt", "testxx", "best", "xesx"} {
		if !runAutomaton(a, s) {
			t.Errorf("should accept %q within 2 edits", s)
		}
	}
	for _, s := range []string{"t", "abcd", "testxxx"} {
		if runAutomaton(a, s) {
			t.Errorf("should reject %q", s)
		}
	}
}

// Pattern "ab" with one edit.
func TestLevenshteinAutomaton_TwoSymbolPattern(t *testing.T) {
	a := mustAutomaton(t, "ab", 1)

	accepts := []string{"ab", "a", "b", "abc", "ax", "az", "a9", "aab", "xab"}
	for _, s := range accepts {
		if !runAutomaton(a, s) {
			t.Errorf("ab~1 should accept %q", s)
		}
	}

	rejects := []string{"abcd", "xy", "", "ba", "bb1"}
	for _, s := range rejects {
		if runAutomaton(a, s) {
			t.Errorf("ab~1 should reject %q", s)
		}
	}
}

func TestLevenshteinAutomaton_Unicode(t *testing.T) {
	a := mustAutomaton(t, "café", 1)

	for _, s := range []string{"café", "cafe", "caf", "cafés"} {
		if !runAutomaton(a, s) {
			t.Errorf("café~1 should accept %q", s)
		}
	}
	if runAutomaton(a, "cof") {
		t.Error("café~1 should reject cof")
	}
}

func TestLevenshteinAutomaton_NegativeThreshold(t *testing.T) {
	_, err := NewLevenshteinAutomaton("hello", -1)
	if err == nil {
		t.Error("expected error for negative threshold")
	}
}

func TestLevenshteinAutomaton_CanMatch(t *testing.T) {
	a := mustAutomaton(t, "ab", 1)

	if !a.CanMatch(a.Start()) {
		t.Error("start state should CanMatch")
	}
	if a.CanMatch(DeadState) {
		t.Error("dead state should not CanMatch")
	}

	// Two unrelated symbols exhaust the budget; the next state has no way back.
	state := a.Step(a.Step(a.Start(), 'x'), 'y')
	if a.CanMatch(state) {
		t.Errorf("state after %q should not CanMatch", "xy")
	}
}

func TestRun_MatchesStepping(t *testing.T) {
	a := mustAutomaton(t, "food", 1)

	for _, s := range []string{"food", "fod", "fxod", "foods", "bar", "", "ffoodd"} {
		if got, want := Run(a, s), runAutomaton(a, s); got != want {
			t.Errorf("Run(%q) = %v, stepping = %v", s, got, want)
		}
	}
}
