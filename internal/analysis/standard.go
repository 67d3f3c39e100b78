package analysis

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// StandardAnalyzer tokenizes on Unicode word boundaries and case-folds tokens.
type StandardAnalyzer struct{}

// NewStandardAnalyzer creates a new StandardAnalyzer.
func NewStandardAnalyzer() *StandardAnalyzer {
	return &StandardAnalyzer{}
}

// Analyze tokenizes the input using Unicode word boundary detection and case folding.
func (a *StandardAnalyzer) Analyze(text string) []Token {
	var tokens []Token
	pos := 0
	i := 0

	for i < len(text) {
		// Skip non-word characters.
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			i += size
			continue
		}

		// Collect word characters.
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !isWordRune(r) {
				break
			}
			i += size
		}

		// A Caser keeps state between calls, so each term gets its own.
		term := normalize(cases.Fold().String(text[start:i]))
		if term != "" {
			tokens = append(tokens, Token{
				Term:      term,
				Position:  pos,
				StartByte: start,
				EndByte:   i,
			})
			pos++
		}
	}

	return tokens
}

// Combining marks stay inside the word so decomposed accents survive until NFC.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '_'
}
