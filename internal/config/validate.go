package config

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/aocday/internal/errors"
)

// Validate checks a merged Config. Returns E_INVALID_CONFIG naming the
// first offending field.
func Validate(cfg Config) error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New(errors.EInvalidConfig, "base_url must be an absolute http(s) URL, got "+quote(cfg.BaseURL))
	}

	if cfg.Timeout < 0 {
		return errors.New(errors.EInvalidConfig, "timeout must not be negative")
	}

	if err := validateRelPath("manifest_file", cfg.ManifestFile); err != nil {
		return err
	}

	if cfg.InputFile == "" {
		return errors.New(errors.EInvalidConfig, "input_file must be a non-empty file name")
	}
	if strings.ContainsAny(cfg.InputFile, `/\`) || cfg.InputFile == "." || cfg.InputFile == ".." {
		return errors.New(errors.EInvalidConfig, "input_file must be a plain file name, got "+quote(cfg.InputFile))
	}

	switch cfg.NameStyle {
	case NameStyleFixed, NameStyleLegacy:
	default:
		return errors.New(errors.EInvalidConfig, "name_style must be \"fixed\" or \"legacy\", got "+quote(cfg.NameStyle))
	}

	return nil
}

// validateRelPath requires a slash-separated path that stays inside the
// scaffolded directory.
func validateRelPath(field, p string) error {
	if p == "" {
		return errors.New(errors.EInvalidConfig, field+" must be non-empty")
	}
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return errors.New(errors.EInvalidConfig, field+" must be relative, got "+quote(p))
	}
	clean := path.Clean(filepath.ToSlash(p))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return errors.New(errors.EInvalidConfig, field+" must stay inside the project, got "+quote(p))
	}
	return nil
}

func quote(s string) string {
	return "\"" + s + "\""
}
