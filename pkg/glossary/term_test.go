package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAnchor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Hello World", "hello-world"},
		{"acronym", "API", "api"},
		{"parenthesized", "API (Application Programming Interface)", "api-application-programming-interface"},
		{"surrounding_spaces", "  Spaced  Text  ", "spaced-text"},
		{"dots", "dots.and.stuff", "dots-and-stuff"},
		{"underscore", "under_score", "under-score"},
		{"punctuation_run", "a -- b!!", "a-b"},
		{"empty", "", ""},
		{"only_punctuation", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateAnchor(tt.in))
		})
	}
}

func TestGenerateAnchor_Idempotent(t *testing.T) {
	inputs := []string{
		"API (Application Programming Interface)",
		"Hello World",
		"under_score",
	}
	for _, in := range inputs {
		once := GenerateAnchor(in)
		assert.Equal(t, once, GenerateAnchor(once))
	}
}

func TestExtractShortName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"acronym_with_expansion", "API (Application Programming Interface)", "API"},
		{"adam", "ADaM (Analysis Data Model)", "ADaM"},
		{"no_parens", "Simple Term", ""},
		{"bare_acronym", "XPT", ""},
		{"rest", "REST", ""},
		// Prefix not shorter than half the full string is not a short name.
		{"long_prefix", "Something Long (x)", ""},
		{"empty_prefix", "(only parens)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractShortName(tt.in))
		})
	}
}

func TestNewTerm(t *testing.T) {
	term := NewTerm("API (Application Programming Interface)")
	assert.Equal(t, "API (Application Programming Interface)", term.Name)
	assert.Equal(t, "api-application-programming-interface", term.Anchor)
	assert.Equal(t, "API", term.ShortName)
	assert.Empty(t, term.Definition)
}

func TestNewTermWithDefinition(t *testing.T) {
	term := NewTermWithDefinition("API", "Application Programming Interface")
	assert.Equal(t, "API", term.Name)
	assert.Equal(t, "api", term.Anchor)
	assert.Equal(t, "Application Programming Interface", term.Definition)
}

func TestSearchableForms(t *testing.T) {
	t.Run("name_only", func(t *testing.T) {
		forms := NewTerm("XPT").SearchableForms()
		require.Len(t, forms, 1)
		assert.Equal(t, "XPT", forms[0])
	})

	t.Run("with_short_name", func(t *testing.T) {
		forms := NewTerm("API (Application Programming Interface)").SearchableForms()
		require.Len(t, forms, 2)
		assert.Equal(t, "API (Application Programming Interface)", forms[0])
		assert.Equal(t, "API", forms[1])
	})

	t.Run("with_aliases", func(t *testing.T) {
		term := NewTerm("REST")
		term.Aliases = []string{"RESTful"}
		forms := term.SearchableForms()
		require.Len(t, forms, 2)
		assert.Equal(t, []string{"REST", "RESTful"}, forms)
	})
}

func TestHTMLPath(t *testing.T) {
	assert.Equal(t, "glossary.html", HTMLPath("glossary.md"))
	assert.Equal(t, "reference/glossary.html", HTMLPath("reference/glossary.md"))
	assert.Equal(t, "glossary.html", HTMLPath("glossary"))
}
