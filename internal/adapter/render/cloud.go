package render

import (
	"fmt"

	"factcloud/internal/domain"
)

// CloudOptions are the word-cloud rendering parameters.
type CloudOptions struct {
	Width           int
	Height          int
	BackgroundColor string
	MaxWords        int
	Collocations    bool
}

// Validate rejects non-positive dimensions and word limits.
func (o CloudOptions) Validate() error {
	if o.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", domain.ErrInvalidConfiguration, o.Width)
	}
	if o.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", domain.ErrInvalidConfiguration, o.Height)
	}
	if o.MaxWords <= 0 {
		return fmt.Errorf("%w: max_words must be positive, got %d", domain.ErrInvalidConfiguration, o.MaxWords)
	}
	return nil
}

// NewCloudRequest keeps the MaxWords most frequent words and weights them
// against the most frequent one.
func NewCloudRequest(table domain.FrequencyTable, opts CloudOptions) (domain.CloudRequest, error) {
	if err := opts.Validate(); err != nil {
		return domain.CloudRequest{}, err
	}

	top := table.Top(opts.MaxWords)
	words := make([]domain.WordWeight, 0, len(top))
	for _, wc := range top {
		words = append(words, domain.WordWeight{
			Word:   wc.Word,
			Count:  wc.Count,
			Weight: float64(wc.Count) / float64(top[0].Count),
		})
	}

	return domain.CloudRequest{
		Width:           opts.Width,
		Height:          opts.Height,
		BackgroundColor: opts.BackgroundColor,
		MaxWords:        opts.MaxWords,
		Collocations:    opts.Collocations,
		Words:           words,
	}, nil
}
