// Package config loads the optional aocday YAML configuration file.
package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/aocday/internal/errors"
	"github.com/NielsdaWheelz/aocday/internal/fs"
	"github.com/NielsdaWheelz/aocday/internal/paths"
)

// Name styles for the generated manifest package name.
const (
	// NameStyleFixed produces aoc_<year>_<day>.
	NameStyleFixed = "fixed"
	// NameStyleLegacy produces aoc__<day>, matching what the old shell
	// scaffolder actually wrote.
	NameStyleLegacy = "legacy"
)

// DefaultBaseURL is the puzzle site root.
const DefaultBaseURL = "https://adventofcode.com"

// Config is the parsed config file merged with defaults and env overrides.
type Config struct {
	BaseURL string `yaml:"base_url"`
	// Timeout bounds the whole input request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`
	// TemplateDir selects an on-disk template; empty means the embedded one.
	TemplateDir  string `yaml:"template_dir"`
	ManifestFile string `yaml:"manifest_file"`
	InputFile    string `yaml:"input_file"`
	NameStyle    string `yaml:"name_style"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		ManifestFile: "Cargo.toml",
		InputFile:    "input",
		NameStyle:    NameStyleFixed,
	}
}

// Load reads the YAML file at path on top of Default, applies env
// overrides and validates the result.
//
// A missing file is only an error when required is set (an explicit
// --config); otherwise defaults are used. An empty path skips the file.
func Load(filesystem fs.FS, path string, required bool, env paths.Env) (Config, error) {
	cfg := Default()

	var data []byte
	err := os.ErrNotExist
	if path != "" {
		data, err = filesystem.ReadFile(path)
	}
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.EInvalidConfig, "invalid yaml in "+path+": "+err.Error(), err)
		}
	case os.IsNotExist(err) && !required:
	case os.IsNotExist(err):
		return Config{}, errors.Wrap(errors.EInvalidConfig, "config file not found: "+path, err)
	default:
		return Config{}, errors.Wrap(errors.EInvalidConfig, "failed to read "+path, err)
	}

	cfg.applyEnvOverrides(env)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnvOverrides lets AOC_* variables win over the file.
func (c *Config) applyEnvOverrides(env paths.Env) {
	if env == nil {
		return
	}
	if v := env.Get("AOC_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := env.Get("AOC_TEMPLATE_DIR"); v != "" {
		c.TemplateDir = v
	}
	if v := env.Get("AOC_NAME_STYLE"); v != "" {
		c.NameStyle = strings.ToLower(v)
	}
}
