package analyzer

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Stemmer reduces tokens to their English snowball stem.
type Stemmer struct {
	language string
}

// NewStemmer creates an English stemmer.
func NewStemmer() *Stemmer {
	return &Stemmer{language: "english"}
}

// Stem returns the stem of word. Hyphenated words are stemmed per part so
// "long-haired" keeps its shape. Words the stemmer rejects are returned unchanged.
func (s *Stemmer) Stem(word string) string {
	if !strings.Contains(word, "-") {
		return s.stem(word)
	}
	parts := strings.Split(word, "-")
	for i, p := range parts {
		parts[i] = s.stem(p)
	}
	return strings.Join(parts, "-")
}

func (s *Stemmer) stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, false)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}
