// Package analysis turns free text into the words that get compared against
// each other. Every analyzer emits terms in Unicode NFC so that a precomposed
// and a decomposed spelling of the same word produce the same code points,
// and therefore the same automaton.
package analysis

import "golang.org/x/text/unicode/norm"

// Token represents a single word produced by an analyzer.
type Token struct {
	Term      string
	Position  int
	StartByte int
	EndByte   int
}

// Analyzer splits text into tokens.
// Implementations MUST be safe for concurrent use.
type Analyzer interface {
	// Analyze tokenizes the input text and returns tokens with positions.
	// Byte offsets refer to the input; Term is normalized.
	Analyze(text string) []Token
}

// Terms runs a over text and returns the distinct terms in order of first
// appearance.
func Terms(a Analyzer, text string) []string {
	tokens := a.Analyze(text)
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, dup := seen[tok.Term]; dup {
			continue
		}
		seen[tok.Term] = struct{}{}
		out = append(out, tok.Term)
	}
	return out
}

func normalize(s string) string {
	return norm.NFC.String(s)
}
