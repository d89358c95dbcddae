// Package config provides configuration management for termlink.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Config holds the termlink configuration.
type Config struct {
	// GlossaryPath is the glossary page, relative to the book's source root.
	GlossaryPath string `yaml:"glossary_path"`
	// LinkFirstOnly links each term at most once per document.
	LinkFirstOnly bool `yaml:"link_first_only"`
	// CSSClass is applied to every generated glossary link.
	CSSClass string `yaml:"css_class"`
	// CaseSensitive disables case folding during term matching.
	CaseSensitive bool `yaml:"case_sensitive"`
	// ExcludePages lists glob patterns for pages left untouched.
	ExcludePages []string `yaml:"exclude_pages,omitempty"`
	// Aliases maps a term name to additional surface forms.
	Aliases map[string][]string `yaml:"aliases,omitempty"`
}

// Default returns the configuration used when no file or table overrides it.
func Default() *Config {
	return &Config{
		GlossaryPath:  "reference/glossary.md",
		LinkFirstOnly: true,
		CSSClass:      "glossary-term",
	}
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.GlossaryPath == "" {
		return errors.New("glossary_path is required")
	}
	if c.CSSClass == "" {
		return errors.New("css_class must not be empty")
	}
	return nil
}

// IsGlossaryPath reports whether path names the configured glossary document,
// either exactly or as a component-wise suffix.
func (c *Config) IsGlossaryPath(path string) bool {
	return path == c.GlossaryPath || strings.HasSuffix(path, "/"+c.GlossaryPath)
}

// AliasesFor returns the configured aliases for a term name, or nil.
func (c *Config) AliasesFor(name string) []string {
	return c.Aliases[name]
}

// CompileExcludes validates the exclude_pages globs. Invalid patterns are
// dropped and reported as warnings; a bad pattern never aborts the run.
func (c *Config) CompileExcludes() (patterns, warnings []string) {
	for _, p := range c.ExcludePages {
		if !doublestar.ValidatePattern(p) {
			warnings = append(warnings, fmt.Sprintf("invalid exclude_pages pattern %q dropped", p))
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns, warnings
}

// ShouldExclude reports whether a document path matches any compiled exclude
// pattern.
func ShouldExclude(patterns []string, docPath string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, docPath); err == nil && ok {
			return true
		}
	}
	return false
}

// LoadFromEnv overrides configuration from TERMLINK_* environment variables.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("TERMLINK_GLOSSARY_PATH"); v != "" {
		c.GlossaryPath = v
	}
	if v := os.Getenv("TERMLINK_CSS_CLASS"); v != "" {
		c.CSSClass = v
	}
}

// DefaultConfigPath returns the default configuration file path. The config
// is project-local, next to the book it describes.
func DefaultConfigPath() string {
	return "termlink.yml"
}

// Load reads the configuration from path, filling defaults for absent keys.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// LoadWithEnv loads configuration from path and applies environment
// overrides. A missing file falls back to defaults; a file that exists but
// fails to parse is a fatal configuration error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}
	cfg.LoadFromEnv()
	return cfg, nil
}

// Save writes the configuration to the specified path.
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
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// mdBookTable mirrors the [preprocessor.termlink] table as mdBook hands it
// to the preprocessor (kebab-case keys, everything optional).
type mdBookTable struct {
	GlossaryPath  *string             `json:"glossary-path"`
	LinkFirstOnly *bool               `json:"link-first-only"`
	CSSClass      *string             `json:"css-class"`
	CaseSensitive *bool               `json:"case-sensitive"`
	ExcludePages  []string            `json:"exclude-pages"`
	Aliases       map[string][]string `json:"aliases"`
}

// FromMdBookContext builds a Config from the raw [preprocessor.termlink]
// table, falling back to defaults for absent keys. A malformed table is a
// fatal configuration error.
func FromMdBookContext(table json.RawMessage) (*Config, error) {
	cfg := Default()
	if len(table) == 0 {
		return cfg, nil
	}

	var raw mdBookTable
	if err := json.Unmarshal(table, &raw); err != nil {
		return nil, fmt.Errorf("malformed preprocessor configuration: %w", err)
	}

	if raw.GlossaryPath != nil {
		cfg.GlossaryPath = *raw.GlossaryPath
	}
	if raw.LinkFirstOnly != nil {
		cfg.LinkFirstOnly = *raw.LinkFirstOnly
	}
	if raw.CSSClass != nil {
		cfg.CSSClass = *raw.CSSClass
	}
	if raw.CaseSensitive != nil {
		cfg.CaseSensitive = *raw.CaseSensitive
	}
	cfg.ExcludePages = raw.ExcludePages
	cfg.Aliases = raw.Aliases

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
