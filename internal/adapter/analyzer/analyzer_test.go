package analyzer

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"factcloud/internal/domain"
)

func newTestAnalyzer(t *testing.T, opts Options) *Analyzer {
	t.Helper()
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New(%+v): %v", opts, err)
	}
	return a
}

func TestNew_InvalidMinWordLength(t *testing.T) {
	_, err := New(Options{MinWordLength: -1})
	if !errors.Is(err, domain.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestNew_StemmingRequiresLowercase(t *testing.T) {
	_, err := New(Options{MinWordLength: 2, Stemming: true})
	if !errors.Is(err, domain.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}

	a := newTestAnalyzer(t, Options{Lowercase: true, MinWordLength: 2, Stemming: true})
	tokens := a.TokenizeSentence("Cats are running")
	expected := []string{"cat", "run"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("expected %v, got %v", expected, tokens)
	}
}

func TestNew_CopiesExtraStopwords(t *testing.T) {
	extra := []string{"cat"}
	a := newTestAnalyzer(t, Options{Lowercase: true, MinWordLength: 2, ExtraStopwords: extra})
	extra[0] = "dog"

	if got := a.ExtraStopwords(); !reflect.DeepEqual(got, []string{"cat"}) {
		t.Errorf("expected extra stopwords [cat], got %v", got)
	}
}

func TestAnalyzer_Tokenize(t *testing.T) {
	a := newTestAnalyzer(t, Options{Lowercase: true, MinWordLength: 2, ExtraStopwords: []string{"cat"}})

	tokens := a.Tokenize([]string{"Cats and a Cat sleep"})
	expected := []string{"cats", "sleep"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("expected %v, got %v", expected, tokens)
	}
}

func TestAnalyzer_Frequencies(t *testing.T) {
	a := newTestAnalyzer(t, Options{Lowercase: true, MinWordLength: 1})

	freq := a.Frequencies([]string{"cat cat dog", "dog"})
	expected := domain.FrequencyTable{"cat": 2, "dog": 2}
	if !reflect.DeepEqual(freq, expected) {
		t.Errorf("expected %v, got %v", expected, freq)
	}
}

func TestAnalyzer_FrequenciesDeterministic(t *testing.T) {
	a := newTestAnalyzer(t, Options{Lowercase: true, MinWordLength: 2})
	facts := []string{
		"A cat's nose is unique -- like a human fingerprint.",
		"Cats sleep 70% of their lives.",
		"A group of cats is called a clowder.",
	}

	first := a.Frequencies(facts)
	second := a.Frequencies(facts)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("frequencies differ between runs: %v vs %v", first, second)
	}
	if first["cats"] != 2 {
		t.Errorf("expected cats=2, got %d", first["cats"])
	}
}

func TestAnalyzer_Stats(t *testing.T) {
	a := newTestAnalyzer(t, Options{Lowercase: true, MinWordLength: 2})
	facts := []string{
		"Cats sleep a lot",
		"a — b",
		"Whiskers help cats navigate",
	}

	rows, err := a.Stats(facts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(facts) {
		t.Fatalf("expected %d rows, got %d", len(facts), len(rows))
	}
	for i, row := range rows {
		if row.Text != facts[i] {
			t.Errorf("row %d: expected text %q, got %q", i, facts[i], row.Text)
		}
	}

	first := rows[0]
	if first.CharCount != 16 || first.WordCount != 4 || first.KeywordCount != 3 {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.KeywordRatio != 0.75 {
		t.Errorf("expected ratio 0.75, got %f", first.KeywordRatio)
	}

	// The raw split sees the dash as a word; the tokenizer drops everything.
	dash := rows[1]
	if dash.CharCount != 5 || dash.WordCount != 3 || dash.KeywordCount != 0 || dash.KeywordRatio != 0 {
		t.Errorf("unexpected dash row: %+v", dash)
	}
}

func TestAnalyzer_StatsEmptySentence(t *testing.T) {
	a := newTestAnalyzer(t, Options{Lowercase: true, MinWordLength: 2})

	rows, err := a.Stats([]string{"cats purr", "  "})
	if !errors.Is(err, domain.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if rows != nil {
		t.Errorf("expected no rows on failure, got %v", rows)
	}

	var rowErr *domain.RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("expected *domain.RowError, got %T", err)
	}
	if rowErr.Index != 1 {
		t.Errorf("expected failing index 1, got %d", rowErr.Index)
	}

	if _, err := a.Stats([]string{""}); !errors.Is(err, domain.ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero for empty string, got %v", err)
	}
}

func TestAnalyzer_AddStopwords(t *testing.T) {
	a := newTestAnalyzer(t, Options{Lowercase: true, MinWordLength: 2})
	facts := []string{"Cats purr and cats knead"}

	if got := a.Frequencies(facts)["cats"]; got != 2 {
		t.Fatalf("expected cats=2 before adding stopwords, got %d", got)
	}

	size := len(a.Stopwords())
	a.AddStopwords("CATS")
	if got := len(a.Stopwords()); got != size+1 {
		t.Errorf("expected %d stopwords, got %d", size+1, got)
	}
	if _, ok := a.Frequencies(facts)["cats"]; ok {
		t.Error("expected cats to be filtered after AddStopwords")
	}

	a.AddStopwords("cats")
	if got := len(a.Stopwords()); got != size+1 {
		t.Errorf("repeated AddStopwords changed size to %d", got)
	}
}

func TestAnalyzer_ConcurrentUse(t *testing.T) {
	a := newTestAnalyzer(t, Options{Lowercase: true, MinWordLength: 2})
	facts := []string{"Cats have five toes on their front paws"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			a.AddStopwords("paws")
		}()
		go func() {
			defer wg.Done()
			if _, err := a.Stats(facts); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			a.Frequencies(facts)
		}()
	}
	wg.Wait()

	if _, ok := a.Frequencies(facts)["paws"]; ok {
		t.Error("expected paws to be filtered")
	}
}
