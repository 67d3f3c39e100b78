// Package pairs compares words pairwise through Levenshtein automata and
// checks every verdict against the dynamic-programming edit distance.
package pairs

// Pair is one comparison to run.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Enumerate returns every unordered pair of distinct positions in words,
// in input order: (w0,w1), (w0,w2), ..., (w1,w2), ...
func Enumerate(words []string) []Pair {
	if len(words) < 2 {
		return nil
	}
	out := make([]Pair, 0, len(words)*(len(words)-1)/2)
	for i := range words {
		for j := i + 1; j < len(words); j++ {
			out = append(out, Pair{A: words[i], B: words[j]})
		}
	}
	return out
}

// Result is the outcome of one comparison.
type Result struct {
	Pair
	Threshold int `json:"threshold"`

	// Matched is the automaton verdict: both automata accept a common string.
	Matched bool `json:"matched"`
	// Witness is a shortest common string when Matched.
	Witness string `json:"witness,omitempty"`

	// Distance is the oracle edit distance between A and B.
	Distance int `json:"distance"`
	// WithinK reports Distance <= Threshold.
	WithinK bool `json:"within_k"`
	// Bound reports Distance <= 2*Threshold, the most shared acceptance implies.
	Bound bool `json:"bound"`
	// Consistent is false if the verdict contradicts the oracle: a match
	// beyond 2k, or no match within k.
	Consistent bool `json:"consistent"`
}

// Agrees reports whether the automaton verdict equals WithinK.
func (r Result) Agrees() bool { return r.Matched == r.WithinK }

// Summary aggregates a batch of results.
type Summary struct {
	Total        int `json:"total"`
	Matched      int `json:"matched"`
	WithinK      int `json:"within_k"`
	Agreed       int `json:"agreed"`
	Inconsistent int `json:"inconsistent"`
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Matched {
			s.Matched++
		}
		if r.WithinK {
			s.WithinK++
		}
		if r.Agrees() {
			s.Agreed++
		}
		if !r.Consistent {
			s.Inconsistent++
		}
	}
	return s
}
