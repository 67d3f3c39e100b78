package analysis

import "strings"

// KeywordAnalyzer passes the whole trimmed input as a single token.
type KeywordAnalyzer struct{}

// NewKeywordAnalyzer creates a new KeywordAnalyzer.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

// Analyze returns the input, minus surrounding whitespace, as a single token.
func (a *KeywordAnalyzer) Analyze(text string) []Token {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	start := strings.Index(text, trimmed)
	return []Token{
		{
			Term:      normalize(trimmed),
			Position:  0,
			StartByte: start,
			EndByte:   start + len(trimmed),
		},
	}
}
