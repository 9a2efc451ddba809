package analyzer

import (
	"sort"
	"strings"
)

// StopwordSet is a read-only set of words excluded from analysis.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from a word list.
func NewStopwordSet(words ...string) StopwordSet {
	s := make(StopwordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is an exact member of the set.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Sorted returns the members in lexical order.
func (s StopwordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// StopwordManager owns the user-extended stopword set.
//
// extra is the only mutable state; effective is always rebuilt from
// baseline ∪ extra by recompute and never patched in place.
type StopwordManager struct {
	lowercase bool
	baseline  StopwordSet
	extra     StopwordSet
	effective StopwordSet
}

// NewStopwordManager creates a manager over the built-in baseline.
func NewStopwordManager(lowercase bool, extra []string) *StopwordManager {
	m := &StopwordManager{
		lowercase: lowercase,
		baseline:  NewStopwordSet(),
		extra:     NewStopwordSet(),
	}
	for _, w := range baselineStopwords {
		m.baseline[m.fold(w)] = struct{}{}
	}
	for _, w := range extra {
		m.extra[m.fold(w)] = struct{}{}
	}
	m.recompute()
	return m
}

// Add unions words into the extra set. Re-adding a word is a no-op.
func (m *StopwordManager) Add(words ...string) {
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		m.extra[m.fold(w)] = struct{}{}
	}
	m.recompute()
}

// Effective returns the current baseline ∪ extra view. Callers must not modify it.
func (m *StopwordManager) Effective() StopwordSet {
	return m.effective
}

// Extra returns the user-added words in lexical order.
func (m *StopwordManager) Extra() []string {
	return m.extra.Sorted()
}

// Len returns the size of the effective set.
func (m *StopwordManager) Len() int {
	return len(m.effective)
}

func (m *StopwordManager) recompute() {
	effective := make(StopwordSet, len(m.baseline)+len(m.extra))
	for w := range m.baseline {
		effective[w] = struct{}{}
	}
	for w := range m.extra {
		effective[w] = struct{}{}
	}
	m.effective = effective
}

func (m *StopwordManager) fold(w string) string {
	if m.lowercase {
		return strings.ToLower(w)
	}
	return w
}

// baselineStopwords is the classic English word-cloud stopword list.
var baselineStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "can't", "cannot", "com",
	"could", "couldn't", "did", "didn't", "do", "does", "doesn't", "doing", "don't", "down",
	"during", "each", "else", "ever", "few", "for", "from", "further", "get", "had",
	"hadn't", "has", "hasn't", "have", "haven't", "having", "he", "he'd", "he'll", "he's",
	"hence", "her", "here", "here's", "hers", "herself", "him", "himself", "his", "how",
	"how's", "however", "http", "i", "i'd", "i'll", "i'm", "i've", "if", "in",
	"into", "is", "isn't", "it", "it's", "its", "itself", "just", "k", "let's",
	"like", "me", "more", "most", "mustn't", "my", "myself", "no", "nor", "not",
	"of", "off", "on", "once", "only", "or", "other", "otherwise", "ought", "our",
	"ours", "ourselves", "out", "over", "own", "r", "same", "shall", "shan't", "she",
	"she'd", "she'll", "she's", "should", "shouldn't", "since", "so", "some", "such", "than",
	"that", "that's", "the", "their", "theirs", "them", "themselves", "then", "there", "there's",
	"therefore", "these", "they", "they'd", "they'll", "they're", "they've", "this", "those", "through",
	"to", "too", "under", "until", "up", "very", "was", "wasn't", "we", "we'd",
	"we'll", "we're", "we've", "were", "weren't", "what", "what's", "when", "when's", "where",
	"where's", "which", "while", "who", "who's", "whom", "why", "why's", "with", "won't",
	"would", "wouldn't", "www", "you", "you'd", "you'll", "you're", "you've", "your", "yours",
	"yourself", "yourselves",
}
