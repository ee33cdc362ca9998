package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/scorechart/chart"
	"github.com/aerissecure/scorechart/report"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, report.DefaultInstitution(), cfg.Institution)
	assert.Equal(t, "Feedback Form", cfg.Title)
	assert.Equal(t, "excelize", cfg.Reader)
	assert.Equal(t, chart.DefaultOptions(), cfg.Chart)
	assert.Equal(t, "downloaded", cfg.Output.Basename)
	assert.Equal(t, []string{"html"}, cfg.Output.Formats)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("SCORECHART_LOG_LEVEL", "")
	t.Setenv("SCORECHART_READER", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("SCORECHART_LOG_LEVEL", "")
	t.Setenv("SCORECHART_READER", "")

	path := filepath.Join(t.TempDir(), "nested", "scorechart.yaml")
	cfg := DefaultConfig()
	cfg.Metadata.Department = "Physics"
	cfg.Chart.Color = "#ff6900"
	cfg.Output.Formats = []string{"pdf", "png"}

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFile(t *testing.T) {
	t.Setenv("SCORECHART_LOG_LEVEL", "")
	t.Setenv("SCORECHART_READER", "")

	path := filepath.Join(t.TempDir(), "scorechart.yaml")
	data := []byte(`
institution:
  name: Example College
chart:
  color: "#abc"
output:
  formats: [pdf]
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Example College", cfg.Institution.Name)
	assert.Equal(t, report.DefaultInstitution().Address, cfg.Institution.Address)
	assert.Equal(t, "#abc", cfg.Chart.Color)
	assert.Equal(t, "Average Score", cfg.Chart.YAxisTitle)
	assert.Equal(t, []string{"pdf"}, cfg.Output.Formats)
	assert.Equal(t, "downloaded", cfg.Output.Basename)
	assert.NoError(t, cfg.Validate())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart: [unterminated"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCORECHART_LOG_LEVEL", "debug")
	t.Setenv("SCORECHART_READER", "unioffice")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "unioffice", cfg.Reader)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"reader", func(c *Config) { c.Reader = "xlrd" }},
		{"color", func(c *Config) { c.Chart.Color = "blue" }},
		{"no formats", func(c *Config) { c.Output.Formats = nil }},
		{"format", func(c *Config) { c.Output.Formats = []string{"html", "gif"} }},
		{"basename", func(c *Config) { c.Output.Basename = "../x" }},
		{"empty basename", func(c *Config) { c.Output.Basename = "" }},
		{"level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg := DefaultConfig()
	cfg.Output.Formats = []string{"HTML", "pdf"}
	cfg.Chart.Color = ""
	assert.NoError(t, cfg.Validate())
}
