package analyzer

import (
	"regexp"
	"unicode/utf8"
)

// wordPattern matches runs of letters, optionally chained by single hyphens ("long-haired").
var wordPattern = regexp.MustCompile(`\p{L}+(?:-\p{L}+)*`)

// Tokenizer extracts filtered word tokens from sentences.
type Tokenizer struct {
	lowercase bool
	minLen    int
	stemmer   *Stemmer
}

// NewTokenizer creates a Tokenizer. A nil stemmer leaves tokens unstemmed.
// Stems are always lower case, so the stemmer is only applied when lowercase is set.
// The length and stopword filters see the unstemmed word.
func NewTokenizer(lowercase bool, minLen int, stemmer *Stemmer) *Tokenizer {
	if !lowercase {
		stemmer = nil
	}
	return &Tokenizer{
		lowercase: lowercase,
		minLen:    minLen,
		stemmer:   stemmer,
	}
}

// Tokenize normalizes every sentence and returns the surviving tokens in input order.
func (t *Tokenizer) Tokenize(sentences []string, stopwords StopwordSet) []string {
	var tokens []string
	for _, s := range sentences {
		tokens = t.appendTokens(tokens, s, stopwords)
	}
	return tokens
}

// TokenizeSentence is Tokenize for a single sentence.
func (t *Tokenizer) TokenizeSentence(sentence string, stopwords StopwordSet) []string {
	return t.appendTokens(nil, sentence, stopwords)
}

func (t *Tokenizer) appendTokens(dst []string, sentence string, stopwords StopwordSet) []string {
	for _, word := range wordPattern.FindAllString(Normalize(sentence, t.lowercase), -1) {
		if utf8.RuneCountInString(word) < t.minLen {
			continue
		}
		if stopwords.Contains(word) {
			continue
		}
		if t.stemmer != nil {
			word = t.stemmer.Stem(word)
		}
		dst = append(dst, word)
	}
	return dst
}

// Tokenize is the stateless form of the pipeline: normalize, extract, then drop
// short words and stopwords.
func Tokenize(sentences []string, minLen int, stopwords StopwordSet, lowercase bool) []string {
	return NewTokenizer(lowercase, minLen, nil).Tokenize(sentences, stopwords)
}
