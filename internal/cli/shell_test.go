package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"factcloud/config"
	"factcloud/internal/adapter/memstore"
)

func newTestShell(t *testing.T, input string, facts []string) (*shell, *bytes.Buffer) {
	t.Helper()
	uc, err := newAnalyzeUseCase(config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	sh := &shell{
		uc:    uc,
		store: memstore.NewFactStore(1),
		in:    bufio.NewScanner(strings.NewReader(input)),
		out:   &out,
		load: func(paths []string) ([]string, error) {
			if len(paths) == 1 && paths[0] == "missing.txt" {
				return nil, errors.New("path does not exist")
			}
			return facts, nil
		},
		cloudFormat: "text",
	}
	return sh, &out
}

var shellFacts = []string{
	"Cats sleep 70% of their lives.",
	"A group of kittens is called a kindle.",
	"Kittens open their eyes after a week.",
}

func TestShell_SessionFlow(t *testing.T) {
	input := strings.Join([]string{
		"print",
		"load facts.txt",
		"print 2",
		"freq 1",
		"stop kittens, sleep",
		"freq",
		"clean",
		"stats",
		"exit",
	}, "\n")

	sh, out := newTestShell(t, input, shellFacts)
	if err := sh.run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"No facts available.",
		"Loaded 3 facts.",
		"kittens",
		"Added 2 stopwords.",
		"All facts have been cleared.",
		"No facts available. Load facts first.",
		"Bye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}

	for _, w := range sh.uc.ExtraStopwords() {
		if w == "kittens" {
			return
		}
	}
	t.Errorf("expected kittens among extra stopwords, got %v", sh.uc.ExtraStopwords())
}

func TestShell_Prompts(t *testing.T) {
	input := strings.Join([]string{
		"load",
		"print",
		"abc",
		"stop",
		"",
		"stop",
		"purr",
	}, "\n")

	sh, out := newTestShell(t, input, shellFacts)
	if err := sh.run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"How many facts do you want to print?",
		"Please enter a valid number.",
		"No stopwords entered.",
		"Added 1 stopwords.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestShell_Tokens(t *testing.T) {
	input := strings.Join([]string{
		"tokens Kittens purr softly",
		"stop purr",
		"tokens",
		"Kittens purr softly",
		"tokens the cat",
		"exit",
	}, "\n")

	sh, out := newTestShell(t, input, shellFacts)
	if err := sh.run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"kittens purr softly\n",
		"Enter a sentence: kittens softly\n",
		"No tokens.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestShell_StatsAndCloud(t *testing.T) {
	sh, out := newTestShell(t, "load\nstats\ncloud\nexit\n", shellFacts)
	if err := sh.run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()

	for _, want := range []string{"Sentence-level statistics:", "Summary statistics:", "kindle"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestShell_LoadErrorAndUnknown(t *testing.T) {
	sh, out := newTestShell(t, "load missing.txt\ndance\n", shellFacts)
	if err := sh.run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()

	if !strings.Contains(got, "Error: path does not exist") {
		t.Errorf("expected load error, got:\n%s", got)
	}
	if !strings.Contains(got, "Unknown command. Please try again.") {
		t.Errorf("expected unknown command message, got:\n%s", got)
	}
	if sh.store.Len() != 0 {
		t.Errorf("expected no facts after failed load, got %d", sh.store.Len())
	}
}

func TestShell_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sh, _ := newTestShell(t, "help\n", nil)
	if err := sh.run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
