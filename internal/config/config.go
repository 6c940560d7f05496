package config

import (
	"fmt"
	"os"

	"github.com/harrison/grepy/internal/display"
	"github.com/harrison/grepy/internal/logger"
	"github.com/harrison/grepy/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents grepy configuration options.
// Every key mirrors a command line flag; flags win over the file.
type Config struct {
	// Color highlights the matched text
	Color bool `yaml:"color"`

	// LineNumber prefixes each record with its line number
	LineNumber bool `yaml:"line_number"`

	// Filenames prefixes each record with the file path
	Filenames bool `yaml:"filenames"`

	// Recursive descends into directory arguments
	Recursive bool `yaml:"recursive"`

	// SkipBinary drops files that contain a zero byte in their head
	SkipBinary bool `yaml:"skip_binary"`

	// AllMatches highlights every match on a line instead of the first
	AllMatches bool `yaml:"all_matches"`

	// HighlightColor is the foreground color used for matches
	HighlightColor string `yaml:"highlight_color"`

	// CheckLength is how many bytes the binary check reads (<= 0 reads the whole file)
	CheckLength int64 `yaml:"check_length"`

	// ChunkSize is the read size used by the binary check
	ChunkSize int `yaml:"chunk_size"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables a per-run log file in this directory when set
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	search := models.DefaultSearchConfig()
	return &Config{
		SkipBinary:     search.SkipBinary,
		HighlightColor: search.HighlightColor,
		CheckLength:    search.CheckLength,
		ChunkSize:      search.ChunkSize,
		LogLevel:       logger.DefaultLevel,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys absent from the file keep their defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration for a run started in dir.
// See ResolveConfigPath for the lookup order.
func LoadConfigFromDir(dir string) (*Config, error) {
	path := ResolveConfigPath(dir)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// FlagOverrides carries command line values that should replace config values.
// A nil field means the flag was not given.
type FlagOverrides struct {
	Color          *bool
	LineNumber     *bool
	Filenames      *bool
	Recursive      *bool
	SkipBinary     *bool
	AllMatches     *bool
	HighlightColor *string
	LogLevel       *string
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(flags FlagOverrides) {
	if flags.Color != nil {
		c.Color = *flags.Color
	}
	if flags.LineNumber != nil {
		c.LineNumber = *flags.LineNumber
	}
	if flags.Filenames != nil {
		c.Filenames = *flags.Filenames
	}
	if flags.Recursive != nil {
		c.Recursive = *flags.Recursive
	}
	if flags.SkipBinary != nil {
		c.SkipBinary = *flags.SkipBinary
	}
	if flags.AllMatches != nil {
		c.AllMatches = *flags.AllMatches
	}
	if flags.HighlightColor != nil {
		c.HighlightColor = *flags.HighlightColor
	}
	if flags.LogLevel != nil {
		c.LogLevel = *flags.LogLevel
	}
}

// Validate validates the configuration values.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	if !display.IsValidColor(c.HighlightColor) {
		return fmt.Errorf("invalid highlight_color %q, must be one of: %v", c.HighlightColor, display.ColorNames())
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be > 0, got %d", c.ChunkSize)
	}

	return nil
}

// SearchConfig returns the immutable search options derived from c.
func (c *Config) SearchConfig() models.SearchConfig {
	return models.SearchConfig{
		Colorize:        c.Color,
		ShowLineNumbers: c.LineNumber,
		ShowFilenames:   c.Filenames,
		Recursive:       c.Recursive,
		SkipBinary:      c.SkipBinary,
		AllMatches:      c.AllMatches,
		HighlightColor:  c.HighlightColor,
		CheckLength:     c.CheckLength,
		ChunkSize:       c.ChunkSize,
	}
}
