package domain

import "sort"

// FrequencyTable maps a token to the number of times it occurred in a batch.
type FrequencyTable map[string]int

// WordCount is a single entry of a FrequencyTable.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Top returns the n most frequent words, ties broken alphabetically.
// n <= 0 returns every entry.
func (f FrequencyTable) Top(n int) []WordCount {
	out := make([]WordCount, 0, len(f))
	for w, c := range f {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// SentenceStatsRow holds per-sentence metrics.
//
// WordCount is a whitespace split of the raw text while KeywordCount comes from the
// normalizing tokenizer, so the two use different word boundaries on purpose.
type SentenceStatsRow struct {
	Text         string  `json:"text"`
	CharCount    int     `json:"char_count"`
	WordCount    int     `json:"word_count"`
	KeywordCount int     `json:"keyword_count"`
	KeywordRatio float64 `json:"keyword_ratio"`
}

// WordWeight is a word-cloud entry with its weight relative to the most frequent word.
type WordWeight struct {
	Word   string  `json:"word"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

// CloudRequest is what an external word-cloud renderer receives.
type CloudRequest struct {
	Width           int          `json:"width"`
	Height          int          `json:"height"`
	BackgroundColor string       `json:"background_color"`
	MaxWords        int          `json:"max_words"`
	Collocations    bool         `json:"collocations"`
	Words           []WordWeight `json:"words"`
}

// ColumnSummary mirrors a describe() column over stats rows.
type ColumnSummary struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	P25   float64 `json:"p25"`
	P50   float64 `json:"p50"`
	P75   float64 `json:"p75"`
	Max   float64 `json:"max"`
}
