package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [files...]",
	Short: "Show the filtered tokens of each fact",
	Long: `Print the tokens that survive normalization, length and stopword filtering,
one line per fact. With --json the tokens of all facts are printed as one list.

Examples:
  factcloud tokens facts.txt
  echo "Cats purr." | factcloud tokens - --json`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "output all tokens as a JSON array")
}

func runTokens(cmd *cobra.Command, args []string) error {
	uc, err := newAnalyzeUseCase(GetConfig())
	if err != nil {
		return err
	}

	facts, err := loadFacts(cmd.Context(), args, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to load facts: %w", err)
	}

	out := cmd.OutOrStdout()
	if tokensJSON {
		tokens := uc.Tokens(facts)
		if tokens == nil {
			tokens = []string{}
		}
		output, err := json.MarshalIndent(tokens, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	for _, f := range facts {
		fmt.Fprintln(out, strings.Join(uc.TokenizeSentence(f), " "))
	}
	return nil
}
