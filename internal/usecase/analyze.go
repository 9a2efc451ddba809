package usecase

import (
	"fmt"
	"strings"

	"factcloud/internal/adapter/render"
	"factcloud/internal/domain"
	"factcloud/internal/port"
)

// Analyzer is the part of the analysis pipeline the use cases depend on.
type Analyzer interface {
	port.Tokenizer
	Frequencies(sentences []string) domain.FrequencyTable
	Stats(sentences []string) ([]domain.SentenceStatsRow, error)
	AddStopwords(words ...string)
	Stopwords() []string
	ExtraStopwords() []string
}

// AnalyzeUseCase drives frequency, stats and word-cloud requests over a batch of facts.
type AnalyzeUseCase struct {
	analyzer Analyzer
	cloud    render.CloudOptions
}

// NewAnalyzeUseCase creates a new analyze use case.
func NewAnalyzeUseCase(analyzer Analyzer, cloud render.CloudOptions) (*AnalyzeUseCase, error) {
	if err := cloud.Validate(); err != nil {
		return nil, err
	}
	return &AnalyzeUseCase{
		analyzer: analyzer,
		cloud:    cloud,
	}, nil
}

// Frequencies returns the top n words of the batch; n <= 0 returns all of them.
func (u *AnalyzeUseCase) Frequencies(facts []string, n int) []domain.WordCount {
	return u.analyzer.Frequencies(facts).Top(n)
}

// StatsResult holds the per-sentence rows and their column summaries.
type StatsResult struct {
	Rows    []domain.SentenceStatsRow `json:"rows"`
	Summary []domain.ColumnSummary    `json:"summary"`
	Skipped int                       `json:"skipped,omitempty"`
}

// Stats computes sentence rows. With skipBlank, whitespace-only facts are dropped
// instead of failing the batch.
func (u *AnalyzeUseCase) Stats(facts []string, skipBlank bool) (*StatsResult, error) {
	skipped := 0
	if skipBlank {
		kept := DropBlank(facts)
		skipped = len(facts) - len(kept)
		facts = kept
	}

	rows, err := u.analyzer.Stats(facts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sentence stats: %w", err)
	}

	return &StatsResult{
		Rows:    rows,
		Summary: Describe(rows),
		Skipped: skipped,
	}, nil
}

// Tokens returns the filtered tokens of the whole batch in input order.
func (u *AnalyzeUseCase) Tokens(facts []string) []string {
	return u.analyzer.Tokenize(facts)
}

// TokenizeSentence returns the filtered tokens of a single fact.
func (u *AnalyzeUseCase) TokenizeSentence(fact string) []string {
	return u.analyzer.TokenizeSentence(fact)
}

// CloudRequest builds the word-cloud request for the batch.
func (u *AnalyzeUseCase) CloudRequest(facts []string) (domain.CloudRequest, error) {
	return render.NewCloudRequest(u.analyzer.Frequencies(facts), u.cloud)
}

// Render hands a built request to renderer.
func (u *AnalyzeUseCase) Render(req domain.CloudRequest, renderer port.Renderer) error {
	if err := renderer.Render(req); err != nil {
		return fmt.Errorf("failed to render word cloud: %w", err)
	}
	return nil
}

// AddStopwords extends the analyzer's stopword set and reports how many words were given.
func (u *AnalyzeUseCase) AddStopwords(words []string) int {
	var clean []string
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			clean = append(clean, w)
		}
	}
	u.analyzer.AddStopwords(clean...)
	return len(clean)
}

// Stopwords returns the effective stopword set, sorted.
func (u *AnalyzeUseCase) Stopwords() []string {
	return u.analyzer.Stopwords()
}

// ExtraStopwords returns the user-added stopwords, sorted.
func (u *AnalyzeUseCase) ExtraStopwords() []string {
	return u.analyzer.ExtraStopwords()
}

// DropBlank returns facts that contain at least one non-whitespace character.
func DropBlank(facts []string) []string {
	kept := make([]string, 0, len(facts))
	for _, f := range facts {
		if strings.TrimSpace(f) != "" {
			kept = append(kept, f)
		}
	}
	return kept
}

// SplitStopwords parses a comma-separated stopword list.
func SplitStopwords(input string) []string {
	var words []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(input, ",") {
		w := strings.TrimSpace(part)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}
