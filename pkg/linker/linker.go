// Package linker rewrites markdown prose so glossary term occurrences become
// links to the glossary page. Text inside code blocks, inline code, links,
// images, and headings is never touched, and every byte the rewrite does not
// touch round-trips verbatim.
package linker

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/open-doc-collective/termlink/pkg/glossary"
)

// Options controls term matching and the generated link markup.
type Options struct {
	// LinkFirstOnly links only the first occurrence of each term per document.
	LinkFirstOnly bool
	// CSSClass is applied to every generated link.
	CSSClass string
	// CaseSensitive disables case folding during matching.
	CaseSensitive bool
}

// context identifies the construct enclosing the current point of the walk.
type context int

const (
	contextNormal context = iota
	contextCodeBlock
	contextLink
	contextImage
	contextHeading
)

// patch replaces content[start:end] with repl.
type patch struct {
	start int
	end   int
	repl  string
}

// linkParser is a goldmark parser matching the dialect the documents are
// written in.
var linkParser = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.DefinitionList,
	),
)

// AddTermLinks rewrites content so occurrences of the given terms link to
// anchors on the page at glossaryRel. Terms match longest name first, so a
// short term like "API" cannot preempt "API Gateway" inside the same span.
// The already-linked set is scoped to this single call; every document starts
// fresh.
func AddTermLinks(content []byte, terms []glossary.Term, glossaryRel string, opts Options) ([]byte, error) {
	sorted := make([]glossary.Term, len(terms))
	copy(sorted, terms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Name) > len(sorted[j].Name)
	})

	doc := linkParser.Parser().Parse(text.NewReader(content))

	linked := make(map[string]bool)
	stack := []context{contextNormal}
	var patches []patch

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n.Kind() {
		case ast.KindCodeBlock, ast.KindFencedCodeBlock:
			stack = track(stack, contextCodeBlock, entering)
		case ast.KindLink:
			stack = track(stack, contextLink, entering)
		case ast.KindImage:
			stack = track(stack, contextImage, entering)
		case ast.KindHeading:
			stack = track(stack, contextHeading, entering)
		case ast.KindCodeSpan:
			// Inline code passes through verbatim in every context.
			return ast.WalkSkipChildren, nil
		case ast.KindText:
			if !entering || stack[len(stack)-1] != contextNormal {
				return ast.WalkContinue, nil
			}
			seg := n.(*ast.Text).Segment
			rewritten, changed := replaceTerms(string(seg.Value(content)), sorted, glossaryRel, opts, linked)
			if changed {
				patches = append(patches, patch{start: seg.Start, end: seg.Stop, repl: rewritten})
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk markdown: %w", err)
	}

	if len(patches) == 0 {
		return content, nil
	}
	return applyPatches(content, patches), nil
}

// track pushes the marker on enter and pops it on exit.
func track(stack []context, c context, entering bool) []context {
	if entering {
		return append(stack, c)
	}
	if len(stack) > 1 {
		return stack[:len(stack)-1]
	}
	return stack
}

// applyPatches splices replacements into content. Patches arrive in document
// order and never overlap, so untouched regions copy through byte for byte.
func applyPatches(content []byte, patches []patch) []byte {
	var out bytes.Buffer
	out.Grow(len(content) + len(content)/4)
	pos := 0
	for _, p := range patches {
		out.Write(content[pos:p.start])
		out.WriteString(p.repl)
		pos = p.end
	}
	out.Write(content[pos:])
	return out.Bytes()
}
