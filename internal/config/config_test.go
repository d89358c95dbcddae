package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "reference/glossary.md", cfg.GlossaryPath)
	assert.True(t, cfg.LinkFirstOnly)
	assert.Equal(t, "glossary-term", cfg.CSSClass)
	assert.False(t, cfg.CaseSensitive)
	assert.Empty(t, cfg.ExcludePages)
	assert.Empty(t, cfg.Aliases)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.GlossaryPath = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "glossary_path")

	cfg = Default()
	cfg.CSSClass = ""
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "css_class")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termlink.yml")
	data := `glossary_path: docs/glossary.md
link_first_only: false
case_sensitive: true
exclude_pages:
  - "changelog.md"
  - "appendix/*"
aliases:
  REST:
    - RESTful
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "docs/glossary.md", cfg.GlossaryPath)
	assert.False(t, cfg.LinkFirstOnly)
	assert.True(t, cfg.CaseSensitive)
	// Defaults survive for keys the file omits.
	assert.Equal(t, "glossary-term", cfg.CSSClass)
	assert.Equal(t, []string{"changelog.md", "appendix/*"}, cfg.ExcludePages)
	assert.Equal(t, []string{"RESTful"}, cfg.AliasesFor("REST"))
	assert.Nil(t, cfg.AliasesFor("API"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("TERMLINK_GLOSSARY_PATH", "other/glossary.md")
	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, "other/glossary.md", cfg.GlossaryPath)
}

func TestLoadWithEnv_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termlink.yml")
	require.NoError(t, os.WriteFile(path, []byte("glossary_path: [unclosed"), 0644))

	_, err := LoadWithEnv(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "termlink.yml")

	cfg := Default()
	cfg.GlossaryPath = "docs/glossary.md"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestIsGlossaryPath(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.IsGlossaryPath("reference/glossary.md"))
	assert.True(t, cfg.IsGlossaryPath("src/reference/glossary.md"))
	assert.False(t, cfg.IsGlossaryPath("chapter1.md"))
	assert.False(t, cfg.IsGlossaryPath("glossary.md"))
}

func TestCompileExcludes(t *testing.T) {
	cfg := Default()
	cfg.ExcludePages = []string{"changelog.md", "appendix/*", "[bad"}

	patterns, warnings := cfg.CompileExcludes()
	assert.Equal(t, []string{"changelog.md", "appendix/*"}, patterns)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "[bad")
}

func TestShouldExclude(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"exact", []string{"changelog.md"}, "changelog.md", true},
		{"exact_miss", []string{"changelog.md"}, "chapter1.md", false},
		{"wildcard", []string{"appendix/*"}, "appendix/a.md", true},
		{"wildcard_miss", []string{"appendix/*"}, "chapter1.md", false},
		{"recursive_root", []string{"**/draft-*.md"}, "draft-intro.md", true},
		{"recursive_nested", []string{"**/draft-*.md"}, "chapters/draft-one.md", true},
		{"recursive_miss", []string{"**/draft-*.md"}, "chapters/one.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldExclude(tt.patterns, tt.path))
		})
	}
}

func TestFromMdBookContext(t *testing.T) {
	t.Run("empty_table_uses_defaults", func(t *testing.T) {
		cfg, err := FromMdBookContext(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		table := []byte(`{
			"command": "termlink preprocess",
			"glossary-path": "docs/terms.md",
			"link-first-only": false,
			"css-class": "term",
			"case-sensitive": true,
			"exclude-pages": ["changelog.md"],
			"aliases": {"REST": ["RESTful"]}
		}`)
		cfg, err := FromMdBookContext(table)
		require.NoError(t, err)
		assert.Equal(t, "docs/terms.md", cfg.GlossaryPath)
		assert.False(t, cfg.LinkFirstOnly)
		assert.Equal(t, "term", cfg.CSSClass)
		assert.True(t, cfg.CaseSensitive)
		assert.Equal(t, []string{"changelog.md"}, cfg.ExcludePages)
		assert.Equal(t, []string{"RESTful"}, cfg.AliasesFor("REST"))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := FromMdBookContext([]byte(`{"glossary-path": 42}`))
		require.Error(t, err)
	})
}
