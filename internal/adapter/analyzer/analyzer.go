package analyzer

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"factcloud/internal/domain"
)

// Options configures an Analyzer. They are fixed once New returns.
type Options struct {
	Lowercase      bool
	MinWordLength  int
	ExtraStopwords []string
	Stemming       bool
}

// Analyzer turns batches of sentences into tokens, frequency tables and per-sentence stats.
// It is safe for concurrent use; AddStopwords is serialized against every read.
type Analyzer struct {
	mu        sync.RWMutex
	tokenizer *Tokenizer
	stopwords *StopwordManager
}

// New validates opts and returns a fully initialized Analyzer.
func New(opts Options) (*Analyzer, error) {
	if opts.MinWordLength < 0 {
		return nil, fmt.Errorf("%w: min_word_length must be >= 0, got %d", domain.ErrInvalidConfiguration, opts.MinWordLength)
	}
	if opts.Stemming && !opts.Lowercase {
		return nil, fmt.Errorf("%w: stemming requires lowercase", domain.ErrInvalidConfiguration)
	}

	var stemmer *Stemmer
	if opts.Stemming {
		stemmer = NewStemmer()
	}

	return &Analyzer{
		tokenizer: NewTokenizer(opts.Lowercase, opts.MinWordLength, stemmer),
		stopwords: NewStopwordManager(opts.Lowercase, opts.ExtraStopwords),
	}, nil
}

// Tokenize returns the filtered tokens of all sentences in input order.
func (a *Analyzer) Tokenize(sentences []string) []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tokenizer.Tokenize(sentences, a.stopwords.Effective())
}

// TokenizeSentence returns the filtered tokens of one sentence.
func (a *Analyzer) TokenizeSentence(sentence string) []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tokenizer.TokenizeSentence(sentence, a.stopwords.Effective())
}

// Frequencies counts filtered tokens across the whole batch.
func (a *Analyzer) Frequencies(sentences []string) domain.FrequencyTable {
	table := make(domain.FrequencyTable)
	for _, tok := range a.Tokenize(sentences) {
		table[tok]++
	}
	return table
}

// Stats computes one row per sentence, in input order.
//
// WordCount splits the raw sentence on whitespace while KeywordCount uses the
// tokenizer, so the ratio reflects two different notions of a word. A sentence
// without any whitespace-delimited word fails the batch with ErrDivisionByZero.
func (a *Analyzer) Stats(sentences []string) ([]domain.SentenceStatsRow, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	stopwords := a.stopwords.Effective()
	rows := make([]domain.SentenceStatsRow, 0, len(sentences))
	for i, s := range sentences {
		words := len(strings.Fields(s))
		if words == 0 {
			return nil, &domain.RowError{Index: i, Text: s, Err: domain.ErrDivisionByZero}
		}
		keywords := len(a.tokenizer.TokenizeSentence(s, stopwords))
		rows = append(rows, domain.SentenceStatsRow{
			Text:         s,
			CharCount:    utf8.RuneCountInString(s),
			WordCount:    words,
			KeywordCount: keywords,
			KeywordRatio: float64(keywords) / float64(words),
		})
	}
	return rows, nil
}

// AddStopwords extends the stopword set. The next read observes the change.
func (a *Analyzer) AddStopwords(words ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopwords.Add(words...)
}

// Stopwords returns a sorted snapshot of the effective stopword set.
func (a *Analyzer) Stopwords() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stopwords.Effective().Sorted()
}

// ExtraStopwords returns a sorted snapshot of the user-added stopwords.
func (a *Analyzer) ExtraStopwords() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stopwords.Extra()
}
