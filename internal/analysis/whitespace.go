package analysis

import "strings"

// WhitespaceAnalyzer splits text on whitespace without case folding.
type WhitespaceAnalyzer struct{}

// NewWhitespaceAnalyzer creates a new WhitespaceAnalyzer.
func NewWhitespaceAnalyzer() *WhitespaceAnalyzer {
	return &WhitespaceAnalyzer{}
}

// Analyze splits the input on whitespace, preserving case and punctuation.
func (a *WhitespaceAnalyzer) Analyze(text string) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))

	searchFrom := 0
	for pos, f := range fields {
		startByte := searchFrom + strings.Index(text[searchFrom:], f)
		endByte := startByte + len(f)

		tokens = append(tokens, Token{
			Term:      normalize(f),
			Position:  pos,
			StartByte: startByte,
			EndByte:   endByte,
		})
		searchFrom = endByte
	}

	return tokens
}
