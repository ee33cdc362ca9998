// Package config loads the scorechart configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aerissecure/scorechart/chart"
	"github.com/aerissecure/scorechart/report"
	"github.com/aerissecure/scorechart/xlsx"
)

// Output formats understood by the render command.
const (
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatHTML, FormatPNG, FormatSVG, FormatPDF}

// ValidLevels lists the supported log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Config is the scorechart configuration.
type Config struct {
	Institution report.Institution `yaml:"institution"`
	Metadata    report.Metadata    `yaml:"metadata"`
	Title       string             `yaml:"title"`
	Reader      string             `yaml:"reader"`     // excelize, unioffice
	Letterhead  string             `yaml:"letterhead"` // optional DOCX replacing the institution text
	Chart       chart.Options      `yaml:"chart"`
	Output      OutputConfig       `yaml:"output"`
	Logging     LoggingConfig      `yaml:"logging"`
}

// OutputConfig controls where rendered files go.
type OutputConfig struct {
	Dir      string   `yaml:"dir"`
	Basename string   `yaml:"basename"` // file name without extension
	Formats  []string `yaml:"formats"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Institution: report.DefaultInstitution(),
		Title:       report.DefaultTitle,
		Reader:      xlsx.BackendExcelize,
		Chart:       chart.DefaultOptions(),
		Output: OutputConfig{
			Dir:      ".",
			Basename: "downloaded",
			Formats:  []string{FormatHTML},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("SCORECHART_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if reader := os.Getenv("SCORECHART_READER"); reader != "" {
		c.Reader = reader
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := xlsx.NewReader(c.Reader); err != nil {
		return fmt.Errorf("%w: reader %q (valid: %s, %s)", ErrInvalid, c.Reader, xlsx.BackendExcelize, xlsx.BackendUnioffice)
	}
	if c.Chart.Color != "" {
		if _, err := chart.ParseColor(c.Chart.Color); err != nil {
			return fmt.Errorf("%w: chart color %q", ErrInvalid, c.Chart.Color)
		}
	}
	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("%w: no output formats", ErrInvalid)
	}
	for _, f := range c.Output.Formats {
		if !slices.Contains(ValidFormats, strings.ToLower(f)) {
			return fmt.Errorf("%w: output format %q (valid: %v)", ErrInvalid, f, ValidFormats)
		}
	}
	if c.Output.Basename == "" || strings.ContainsAny(c.Output.Basename, `/\`) {
		return fmt.Errorf("%w: output basename %q", ErrInvalid, c.Output.Basename)
	}
	if c.Logging.Level != "" && !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("%w: log level %q (valid: %v)", ErrInvalid, c.Logging.Level, ValidLevels)
	}
	return nil
}
