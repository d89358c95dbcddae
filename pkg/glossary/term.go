// Package glossary provides the glossary term model and extraction of terms
// from a definition-list markdown page.
package glossary

import (
	"path"
	"strings"
	"unicode"
)

// Term is a single glossary entry.
type Term struct {
	// Name is the full term name as it appears in the glossary.
	Name string
	// Anchor is the URL fragment for this term on the rendered glossary page.
	Anchor string
	// ShortName is the abbreviation extracted from names like
	// "API (Application Programming Interface)". Empty when not applicable.
	ShortName string
	// Definition is the term's definition text, shown as a link tooltip.
	// Empty when the glossary entry has no definition.
	Definition string
	// Aliases are additional surface forms configured by the user.
	Aliases []string
}

// NewTerm creates a term with a derived anchor and short name.
func NewTerm(name string) Term {
	return Term{
		Name:      name,
		Anchor:    GenerateAnchor(name),
		ShortName: extractShortName(name),
	}
}

// NewTermWithDefinition creates a term carrying definition text.
func NewTermWithDefinition(name, definition string) Term {
	t := NewTerm(name)
	t.Definition = definition
	return t
}

// SearchableForms returns every literal string that should match this term:
// the full name, the short name when present, then any configured aliases.
func (t Term) SearchableForms() []string {
	forms := make([]string, 0, 2+len(t.Aliases))
	forms = append(forms, t.Name)
	if t.ShortName != "" {
		forms = append(forms, t.ShortName)
	}
	forms = append(forms, t.Aliases...)
	return forms
}

// GenerateAnchor derives a URL anchor from a term name using the same
// algorithm the HTML renderer applies to heading IDs: alphanumerics are
// lowercased, every other run of characters collapses to a single hyphen,
// and the result carries no leading or trailing hyphen. Idempotent on
// already-normalized input.
func GenerateAnchor(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastWasHyphen := true // suppress leading hyphens
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			lastWasHyphen = false
		} else if !lastWasHyphen {
			b.WriteByte('-')
			lastWasHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// extractShortName pulls "API" out of "API (Application Programming
// Interface)". The parenthesized pattern counts as a short name only when
// the prefix is non-empty and strictly shorter than half the full name.
func extractShortName(name string) string {
	idx := strings.Index(name, "(")
	if idx < 0 {
		return ""
	}
	short := strings.TrimSpace(name[:idx])
	if short != "" && len(short) < len(name)/2 {
		return short
	}
	return ""
}

// HTMLPath converts a glossary source path to the path of its rendered HTML
// page.
func HTMLPath(srcPath string) string {
	ext := path.Ext(srcPath)
	return strings.TrimSuffix(srcPath, ext) + ".html"
}
