package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cloudFormat string
	cloudOutput string
)

var cloudCmd = &cobra.Command{
	Use:   "cloud [files...]",
	Short: "Build a word cloud from facts",
	Long: `Build a word-cloud request from the word frequencies of all facts.
The text format draws a weighted table in the terminal; the json format writes
the request for an external word-cloud renderer.

Examples:
  factcloud cloud facts.txt
  factcloud cloud facts.txt --format json -o cloud.json`,
	RunE: runCloud,
}

func init() {
	rootCmd.AddCommand(cloudCmd)
	cloudCmd.Flags().StringVarP(&cloudFormat, "format", "f", "", "output format: text or json (default from config)")
	cloudCmd.Flags().StringVarP(&cloudOutput, "output", "o", "", "output file for json (default from config, stdout if empty)")
}

func runCloud(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	uc, err := newAnalyzeUseCase(cfg)
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

	format := cfg.Cloud.Format
	if cloudFormat != "" {
		format = cloudFormat
	}
	output := cfg.Cloud.Output
	if cloudOutput != "" {
		output = cloudOutput
	}

	req, err := renderCloud(uc, facts, format, output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger.Info("word cloud rendered",
		zap.String("format", format),
		zap.String("output", output),
		zap.Int("words", len(req.Words)),
	)
	return nil
}
