package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	freqTop  int
	freqJSON bool
)

var freqCmd = &cobra.Command{
	Use:   "freq [files...]",
	Short: "Show the most frequent words",
	Long: `Count filtered tokens across all facts and print the most frequent words.

Examples:
  factcloud freq facts.txt
  factcloud freq "facts/**/*.txt" --top 50 --json
  cat facts.txt | factcloud freq -`,
	RunE: runFreq,
}

func init() {
	rootCmd.AddCommand(freqCmd)
	freqCmd.Flags().IntVarP(&freqTop, "top", "n", 20, "number of words to show (0 = all)")
	freqCmd.Flags().BoolVar(&freqJSON, "json", false, "output as JSON")
}

func runFreq(cmd *cobra.Command, args []string) error {
	uc, err := newAnalyzeUseCase(GetConfig())
	if err != nil {
		return err
	}

	facts, err := loadFacts(cmd.Context(), args, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to load facts: %w", err)
	}

	words := uc.Frequencies(facts, freqTop)

	out := cmd.OutOrStdout()
	if freqJSON {
		output, err := json.MarshalIndent(words, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	fmt.Fprintf(out, "Analyzed %d facts.\n", len(facts))
	printFrequencies(out, words)
	return nil
}
