package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"factcloud/internal/domain"
)

// Config holds all configuration for factcloud.
type Config struct {
	Cloud   CloudConfig   `yaml:"cloud"`
	Text    TextConfig    `yaml:"text"`
	Facts   FactsConfig   `yaml:"facts"`
	Logging LoggingConfig `yaml:"logging"`
}

// CloudConfig holds word-cloud rendering parameters.
type CloudConfig struct {
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	BackgroundColor string `yaml:"background_color"`
	MaxWords        int    `yaml:"max_words"`
	Collocations    bool   `yaml:"collocations"` // detect common word pairs in the renderer
	Format          string `yaml:"format"`       // "text" or "json"
	Output          string `yaml:"output"`       // file for json output, empty = stdout
}

// TextConfig holds preprocessing parameters.
type TextConfig struct {
	Lowercase      bool     `yaml:"lowercase"`
	MinWordLength  int      `yaml:"min_word_length"`
	ExtraStopwords []string `yaml:"extra_stopwords"`
	Stemming       bool     `yaml:"stemming"`
}

// FactsConfig controls where facts are read from and how they are sampled.
type FactsConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Seed     uint64   `yaml:"seed"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Cloud: CloudConfig{
			Width:           1200,
			Height:          700,
			BackgroundColor: "white",
			MaxWords:        200,
			Collocations:    false,
			Format:          "text",
		},
		Text: TextConfig{
			Lowercase:      true,
			MinWordLength:  2,
			ExtraStopwords: []string{"cat", "cats"},
			Stemming:       false,
		},
		Facts: FactsConfig{
			Includes: []string{"**/*.txt"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**"},
			Seed:     1,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Validate checks value ranges. Errors wrap domain.ErrInvalidConfiguration.
func (c *Config) Validate() error {
	if c.Cloud.Width <= 0 {
		return fmt.Errorf("%w: cloud.width must be positive, got %d", domain.ErrInvalidConfiguration, c.Cloud.Width)
	}
	if c.Cloud.Height <= 0 {
		return fmt.Errorf("%w: cloud.height must be positive, got %d", domain.ErrInvalidConfiguration, c.Cloud.Height)
	}
	if c.Cloud.MaxWords <= 0 {
		return fmt.Errorf("%w: cloud.max_words must be positive, got %d", domain.ErrInvalidConfiguration, c.Cloud.MaxWords)
	}
	switch c.Cloud.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unsupported cloud.format %q", domain.ErrInvalidConfiguration, c.Cloud.Format)
	}
	if c.Text.MinWordLength < 0 {
		return fmt.Errorf("%w: text.min_word_length must be >= 0, got %d", domain.ErrInvalidConfiguration, c.Text.MinWordLength)
	}
	if c.Text.Stemming && !c.Text.Lowercase {
		return fmt.Errorf("%w: text.stemming requires text.lowercase", domain.ErrInvalidConfiguration)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", domain.ErrInvalidConfiguration, err)
	}
	return nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for factcloud.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "factcloud.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".factcloud", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
