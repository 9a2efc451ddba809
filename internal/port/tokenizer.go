package port

// Tokenizer turns sentences into filtered tokens.
type Tokenizer interface {
	Tokenize(sentences []string) []string

	TokenizeSentence(sentence string) []string
}
