package glossary

import (
	"fmt"
	"path"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// extractParser is a goldmark parser with the definition list extension
// enabled, used only for glossary extraction.
var extractParser = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.DefinitionList,
	),
)

// ExtractTerms parses glossary content and returns the terms defined in its
// definition lists, in document order.
//
// A definition list entry looks like:
//
//	API (Application Programming Interface)
//	: A set of protocols for building software.
//
// Titles without a definition still produce a term; blank titles are dropped.
func ExtractTerms(content []byte) []Term {
	doc := extractParser.Parser().Parse(text.NewReader(content))

	var terms []Term
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != east.KindDefinitionList {
			return ast.WalkContinue, nil
		}
		terms = append(terms, termsFromList(n, content)...)
		return ast.WalkSkipChildren, nil
	})
	return terms
}

// termsFromList walks one definition list's children in document order. A
// pending title closes out when its definition ends, when another title
// starts, or when the list ends.
func termsFromList(list ast.Node, source []byte) []Term {
	var terms []Term
	pending := ""
	havePending := false

	flush := func(definition string) {
		if havePending && pending != "" {
			terms = append(terms, NewTermWithDefinition(pending, definition))
		}
		havePending = false
	}

	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.Kind() {
		case east.KindDefinitionTerm:
			flush("")
			pending = strings.TrimSpace(nodeText(child, source))
			havePending = true
		case east.KindDefinitionDescription:
			flush(strings.TrimSpace(nodeText(child, source)))
		}
	}
	flush("")
	return terms
}

// nodeText gathers the plain text of a node's subtree, including inline code.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// NormalizeContent prepares glossary source content for extraction. HTML
// glossaries (exported from a wiki or an older doc tool) are converted to
// markdown first; markdown passes through untouched.
func NormalizeContent(docPath string, content []byte) ([]byte, error) {
	switch strings.ToLower(path.Ext(docPath)) {
	case ".html", ".htm":
		md, err := htmltomarkdown.ConvertString(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to convert HTML glossary %s: %w", docPath, err)
		}
		return []byte(md), nil
	}
	return content, nil
}

// ApplyAliases attaches configured aliases to their terms, matched by exact
// name. Alias order is preserved.
func ApplyAliases(terms []Term, aliases map[string][]string) []Term {
	if len(aliases) == 0 {
		return terms
	}
	out := make([]Term, len(terms))
	copy(out, terms)
	for i := range out {
		if extra, ok := aliases[out[i].Name]; ok {
			out[i].Aliases = append(append([]string(nil), out[i].Aliases...), extra...)
		}
	}
	return out
}

// CheckAliasConflicts rejects any alias that, case-folded, equals a different
// term's own name. Linking such an alias would be ambiguous between the two
// glossary entries, so this is a configuration error.
func CheckAliasConflicts(terms []Term) error {
	byFoldedName := make(map[string]string, len(terms))
	for _, t := range terms {
		byFoldedName[strings.ToLower(t.Name)] = t.Name
	}
	for _, t := range terms {
		for _, alias := range t.Aliases {
			owner, ok := byFoldedName[strings.ToLower(alias)]
			if ok && owner != t.Name {
				return fmt.Errorf("alias %q of term %q conflicts with term %q", alias, t.Name, owner)
			}
		}
	}
	return nil
}
