package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/aocday/internal/errors"
	"github.com/NielsdaWheelz/aocday/internal/fs"
)

type mapEnv map[string]string

func (m mapEnv) Get(key string) string { return m[key] }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingOptionalFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(fs.NewRealFS(), path, false, mapEnv{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "https://adventofcode.com", cfg.BaseURL)
	assert.Zero(t, cfg.Timeout)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := Load(fs.NewRealFS(), path, true, mapEnv{})
	require.Error(t, err)
	assert.Equal(t, errors.EInvalidConfig, errors.GetCode(err))
	assert.Contains(t, err.Error(), path)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
base_url: http://localhost:8080
timeout: 30s
template_dir: /srv/templates/day
name_style: legacy
`)

	cfg, err := Load(fs.NewRealFS(), path, true, mapEnv{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "/srv/templates/day", cfg.TemplateDir)
	assert.Equal(t, NameStyleLegacy, cfg.NameStyle)
	// untouched keys keep their defaults
	assert.Equal(t, "Cargo.toml", cfg.ManifestFile)
	assert.Equal(t, "input", cfg.InputFile)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "base_url: [unterminated\n")

	_, err := Load(fs.NewRealFS(), path, true, mapEnv{})
	require.Error(t, err)
	assert.Equal(t, errors.EInvalidConfig, errors.GetCode(err))
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env wins over file", func(t *testing.T) {
		path := writeConfig(t, "base_url: http://from-file\n")
		env := mapEnv{
			"AOC_BASE_URL":     "http://from-env",
			"AOC_TEMPLATE_DIR": "/tpl",
			"AOC_NAME_STYLE":   "LEGACY",
		}

		cfg, err := Load(fs.NewRealFS(), path, true, env)
		require.NoError(t, err)
		assert.Equal(t, "http://from-env", cfg.BaseURL)
		assert.Equal(t, "/tpl", cfg.TemplateDir)
		assert.Equal(t, NameStyleLegacy, cfg.NameStyle)
	})

	t.Run("nil env is ignored", func(t *testing.T) {
		cfg := Default()
		cfg.applyEnvOverrides(nil)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("invalid env value fails validation", func(t *testing.T) {
		_, err := Load(fs.NewRealFS(), filepath.Join(t.TempDir(), "none.yaml"), false, mapEnv{"AOC_NAME_STYLE": "fancy"})
		assert.Equal(t, errors.EInvalidConfig, errors.GetCode(err))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"http base", func(c *Config) { c.BaseURL = "http://127.0.0.1:9999" }, ""},
		{"relative base", func(c *Config) { c.BaseURL = "adventofcode.com" }, "base_url"},
		{"ftp base", func(c *Config) { c.BaseURL = "ftp://example.com" }, "base_url"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"nested manifest", func(c *Config) { c.ManifestFile = "crate/Cargo.toml" }, ""},
		{"empty manifest", func(c *Config) { c.ManifestFile = "" }, "manifest_file"},
		{"absolute manifest", func(c *Config) { c.ManifestFile = "/etc/Cargo.toml" }, "manifest_file"},
		{"escaping manifest", func(c *Config) { c.ManifestFile = "../Cargo.toml" }, "manifest_file"},
		{"empty input", func(c *Config) { c.InputFile = "" }, "input_file"},
		{"input with dir", func(c *Config) { c.InputFile = "data/input" }, "input_file"},
		{"unknown style", func(c *Config) { c.NameStyle = "kebab" }, "name_style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.EInvalidConfig, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
