package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"factcloud/internal/adapter/memstore"
	"factcloud/internal/usecase"
)

const shellHelp = `Commands:
  load [paths...]   load facts from files, directories or globs (replaces current facts)
  print [n]         print n randomly chosen facts
  freq [n]          show the n most frequent words
  cloud             draw a word cloud from the facts
  tokens [sentence] show the tokens of a sentence under the current stopwords
  stop [w1,w2]      add extra stopwords (comma-separated)
  stats             show sentence-level statistics
  clean             clear all loaded facts
  help              show this help
  exit              exit the shell`

var shellCmd = &cobra.Command{
	Use:   "shell [files...]",
	Short: "Start an interactive session",
	Long: `Start an interactive session that keeps loaded facts and added stopwords in
memory until exit. Files given as arguments are loaded on start.

` + shellHelp,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	uc, err := newAnalyzeUseCase(cfg)
	if err != nil {
		return err
	}

	sh := &shell{
		uc:    uc,
		store: memstore.NewFactStore(cfg.Facts.Seed),
		in:    bufio.NewScanner(cmd.InOrStdin()),
		out:   cmd.OutOrStdout(),
		load: func(paths []string) ([]string, error) {
			return loadFacts(cmd.Context(), paths, nil, cmd.ErrOrStderr())
		},
		cloudFormat: cfg.Cloud.Format,
		cloudOutput: cfg.Cloud.Output,
	}

	if len(args) > 0 {
		sh.handle("load " + strings.Join(args, " "))
	}
	return sh.run(cmd.Context())
}

// shell is the interactive command loop. Its fact store and the analyzer's
// stopwords live only as long as the session.
type shell struct {
	uc    *usecase.AnalyzeUseCase
	store *memstore.FactStore
	in    *bufio.Scanner
	out   io.Writer
	load  func(paths []string) ([]string, error)

	cloudFormat string
	cloudOutput string
}

func (s *shell) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to Fact Cloud. Type 'help' for commands.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, "\n> ")
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		if !s.handle(line) {
			return nil
		}
	}
}

// handle executes one command line and reports whether the loop should continue.
func (s *shell) handle(line string) bool {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "":
	case "exit", "quit":
		fmt.Fprintln(s.out, "Bye!")
		return false
	case "help":
		fmt.Fprintln(s.out, shellHelp)
	case "load":
		s.loadFacts(rest)
	case "print":
		s.printFacts(rest)
	case "freq":
		s.frequencies(rest)
	case "cloud":
		s.cloud()
	case "tokens":
		s.tokens(rest)
	case "stop":
		s.addStopwords(rest)
	case "stats":
		s.stats()
	case "clean":
		s.store.Clear()
		fmt.Fprintln(s.out, "All facts have been cleared.")
	default:
		fmt.Fprintln(s.out, "Unknown command. Please try again.")
	}
	return true
}

func (s *shell) loadFacts(arg string) {
	facts, err := s.load(strings.Fields(arg))
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.store.Replace(facts)
	fmt.Fprintf(s.out, "Loaded %d facts.\n", len(facts))
}

func (s *shell) printFacts(arg string) {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No facts available.")
		return
	}
	n, ok := s.number(arg, "How many facts do you want to print? ")
	if !ok {
		return
	}
	for _, f := range s.store.Sample(n) {
		fmt.Fprintln(s.out, f)
	}
}

func (s *shell) frequencies(arg string) {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No facts available. Load facts first.")
		return
	}
	n := 20
	if arg != "" {
		var ok bool
		if n, ok = s.number(arg, ""); !ok {
			return
		}
	}
	printFrequencies(s.out, s.uc.Frequencies(s.store.Facts(), n))
}

func (s *shell) cloud() {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No facts available. Load facts first.")
		return
	}
	if _, err := renderCloud(s.uc, s.store.Facts(), s.cloudFormat, s.cloudOutput, s.out); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *shell) tokens(arg string) {
	if arg == "" {
		arg = s.ask("Enter a sentence: ")
	}
	tokens := s.uc.TokenizeSentence(arg)
	if len(tokens) == 0 {
		fmt.Fprintln(s.out, "No tokens.")
		return
	}
	fmt.Fprintln(s.out, strings.Join(tokens, " "))
}

func (s *shell) addStopwords(arg string) {
	if arg == "" {
		arg = s.ask("Enter stopwords (comma-separated): ")
	}
	words := usecase.SplitStopwords(arg)
	if len(words) == 0 {
		fmt.Fprintln(s.out, "No stopwords entered.")
		return
	}
	n := s.uc.AddStopwords(words)
	logger.Debug("stopwords added", zap.Strings("words", words))
	fmt.Fprintf(s.out, "Added %d stopwords.\n", n)
}

func (s *shell) stats() {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No facts available. Load facts first.")
		return
	}
	res, err := s.uc.Stats(s.store.Facts(), true)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	printStats(s.out, res, 60)
}

// number parses arg as a non-negative integer, prompting when arg is empty.
func (s *shell) number(arg, prompt string) (int, bool) {
	if arg == "" && prompt != "" {
		arg = s.ask(prompt)
	}
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 0 {
		fmt.Fprintln(s.out, "Please enter a valid number.")
		return 0, false
	}
	return n, true
}

func (s *shell) ask(prompt string) string {
	fmt.Fprint(s.out, prompt)
	line, _ := s.readLine()
	return strings.TrimSpace(line)
}

func (s *shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
