package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var stopwordsExtraOnly bool

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "List the effective stopwords",
	RunE:  runStopwords,
}

func init() {
	rootCmd.AddCommand(stopwordsCmd)
	stopwordsCmd.Flags().BoolVar(&stopwordsExtraOnly, "extra-only", false, "only list stopwords added by configuration")
}

func runStopwords(cmd *cobra.Command, args []string) error {
	uc, err := newAnalyzeUseCase(GetConfig())
	if err != nil {
		return err
	}

	words := uc.Stopwords()
	if stopwordsExtraOnly {
		words = uc.ExtraStopwords()
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, "\n"))
	return nil
}
