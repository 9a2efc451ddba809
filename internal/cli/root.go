package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"factcloud/config"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "factcloud",
	Short: "Fact Cloud - word frequencies, sentence stats and word clouds for short facts",
	Long: `factcloud reads short natural-language facts (one per line), normalizes and
tokenizes them with stopword filtering, and reports word frequencies,
per-sentence keyword statistics and word-cloud layouts.

Example usage:
  factcloud freq facts.txt             # Most frequent words
  factcloud stats facts/*.txt          # Per-sentence statistics
  factcloud cloud --format json -      # Word-cloud request from stdin
  factcloud shell                      # Interactive session`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = newLogger(cfg.Logging.Level, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logger.Debug("configuration loaded",
			zap.String("dir", rootDir),
			zap.String("config", cfgFile),
			zap.Int("min_word_length", cfg.Text.MinWordLength),
			zap.Bool("lowercase", cfg.Text.Lowercase),
		)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./factcloud.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "directory searched for fact files and config (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
