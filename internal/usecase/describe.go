package usecase

import (
	"math"
	"sort"

	"factcloud/internal/domain"
)

// Describe summarizes the numeric columns of stats rows: count, mean, sample
// standard deviation, min, quartiles (linear interpolation) and max.
// Columns over fewer than two rows report a zero std so the result stays JSON-encodable.
func Describe(rows []domain.SentenceStatsRow) []domain.ColumnSummary {
	columns := []struct {
		name  string
		value func(domain.SentenceStatsRow) float64
	}{
		{"char_count", func(r domain.SentenceStatsRow) float64 { return float64(r.CharCount) }},
		{"word_count", func(r domain.SentenceStatsRow) float64 { return float64(r.WordCount) }},
		{"keyword_count", func(r domain.SentenceStatsRow) float64 { return float64(r.KeywordCount) }},
		{"keyword_ratio", func(r domain.SentenceStatsRow) float64 { return r.KeywordRatio }},
	}

	out := make([]domain.ColumnSummary, 0, len(columns))
	for _, col := range columns {
		values := make([]float64, len(rows))
		for i, r := range rows {
			values[i] = col.value(r)
		}
		out = append(out, summarize(col.name, values))
	}
	return out
}

func summarize(name string, values []float64) domain.ColumnSummary {
	s := domain.ColumnSummary{Name: name, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	s.Mean = sum / float64(len(sorted))

	if len(sorted) > 1 {
		var sq float64
		for _, v := range sorted {
			d := v - s.Mean
			sq += d * d
		}
		s.Std = math.Sqrt(sq / float64(len(sorted)-1))
	}

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.P25 = quantile(sorted, 0.25)
	s.P50 = quantile(sorted, 0.50)
	s.P75 = quantile(sorted, 0.75)
	return s
}

// quantile expects sorted input.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
