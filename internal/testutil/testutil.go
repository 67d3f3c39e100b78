package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleWords returns a small set of words with assorted edit distances
// between them, including near-duplicates, reversals and non-letters.
func SampleWords() []string {
	return []string{"ab", "abd", "acd", "abccd", "abcde", "aabcde", "abed", "a@cd", "abcf", "a3b4", "b2cd", "dcba", "abcd"}
}

// SampleCorpus returns text whose standard-analyzed terms are the words
// food, fxod, acd and abccd.
func SampleCorpus() string {
	return "Food, FXOD; food!\nacd abccd\n"
}

// WriteCorpus writes SampleCorpus to a file in a temporary directory and
// returns its path.
func WriteCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(SampleCorpus()), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	return path
}

// WriteFile writes body to name inside a temporary directory and returns
// the path.
func WriteFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
