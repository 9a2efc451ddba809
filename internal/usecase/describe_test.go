package usecase

import (
	"math"
	"testing"

	"factcloud/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDescribe(t *testing.T) {
	rows := []domain.SentenceStatsRow{
		{CharCount: 10, WordCount: 2, KeywordCount: 1, KeywordRatio: 0.5},
		{CharCount: 20, WordCount: 4, KeywordCount: 2, KeywordRatio: 0.5},
		{CharCount: 30, WordCount: 4, KeywordCount: 4, KeywordRatio: 1},
		{CharCount: 40, WordCount: 6, KeywordCount: 3, KeywordRatio: 0.5},
	}

	summary := Describe(rows)
	if len(summary) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(summary))
	}

	chars := summary[0]
	if chars.Name != "char_count" || chars.Count != 4 {
		t.Errorf("unexpected column header: %+v", chars)
	}
	if !almostEqual(chars.Mean, 25) || chars.Min != 10 || chars.Max != 40 {
		t.Errorf("unexpected mean/min/max: %+v", chars)
	}
	if !almostEqual(chars.P25, 17.5) || !almostEqual(chars.P50, 25) || !almostEqual(chars.P75, 32.5) {
		t.Errorf("unexpected quartiles: %+v", chars)
	}
	// Sample standard deviation of 10, 20, 30, 40.
	if !almostEqual(chars.Std, math.Sqrt(500.0/3.0)) {
		t.Errorf("unexpected std: %f", chars.Std)
	}
}

func TestDescribe_SmallInputs(t *testing.T) {
	summary := Describe(nil)
	if summary[0].Count != 0 || summary[0].Mean != 0 {
		t.Errorf("expected zero summary for no rows, got %+v", summary[0])
	}

	summary = Describe([]domain.SentenceStatsRow{{CharCount: 7, WordCount: 1, KeywordCount: 1, KeywordRatio: 1}})
	if summary[0].Std != 0 || summary[0].P50 != 7 {
		t.Errorf("unexpected single-row summary: %+v", summary[0])
	}
}
