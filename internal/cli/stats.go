package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	statsSkipBlank bool
	statsJSON      bool
	statsWidth     int
)

var statsCmd = &cobra.Command{
	Use:   "stats [files...]",
	Short: "Show per-sentence keyword statistics",
	Long: `Compute character count, raw word count, keyword count and keyword ratio for
every fact, followed by summary statistics for each column.

A fact with no whitespace-delimited words has no defined keyword ratio and
fails the command unless --skip-blank is given.

Examples:
  factcloud stats facts.txt
  factcloud stats --json - < facts.txt`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsSkipBlank, "skip-blank", false, "drop blank facts instead of failing")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	statsCmd.Flags().IntVar(&statsWidth, "width", 60, "maximum text column width")
}

func runStats(cmd *cobra.Command, args []string) error {
	uc, err := newAnalyzeUseCase(GetConfig())
	if err != nil {
		return err
	}

	facts, err := loadFacts(cmd.Context(), args, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to load facts: %w", err)
	}
	if len(facts) == 0 {
		return fmt.Errorf("no facts available")
	}

	res, err := uc.Stats(facts, statsSkipBlank)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if statsJSON {
		output, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	printStats(out, res, statsWidth)
	return nil
}
