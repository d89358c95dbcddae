package linker

import (
	"regexp"
	"strings"

	"github.com/open-doc-collective/termlink/pkg/glossary"
)

// span is a piece of the working text. Opaque spans hold link markup inserted
// for an earlier term and are never matched again; only plain spans are
// eligible for further substitution.
type span struct {
	text   string
	opaque bool
}

// replaceTerms applies every term to one text span, in the given order.
// Returns the rewritten text and whether anything changed.
func replaceTerms(text string, terms []glossary.Term, glossaryRel string, opts Options, linked map[string]bool) (string, bool) {
	spans := []span{{text: text}}
	changed := false

	for i := range terms {
		term := &terms[i]
		if opts.LinkFirstOnly && linked[term.Anchor] {
			continue
		}
		re, err := termPattern(term, opts.CaseSensitive)
		if err != nil {
			// Cannot happen with quoted forms, but a bad pattern only skips
			// this term rather than aborting the document.
			continue
		}

		matched := false
		var next []span
		for _, s := range spans {
			if s.opaque || (opts.LinkFirstOnly && matched) {
				next = append(next, s)
				continue
			}

			var locs [][]int
			if opts.LinkFirstOnly {
				if loc := re.FindStringIndex(s.text); loc != nil {
					locs = [][]int{loc}
				}
			} else {
				locs = re.FindAllStringIndex(s.text, -1)
			}
			if len(locs) == 0 {
				next = append(next, s)
				continue
			}

			matched = true
			pos := 0
			for _, loc := range locs {
				if loc[0] > pos {
					next = append(next, span{text: s.text[pos:loc[0]]})
				}
				next = append(next, span{
					text:   linkFragment(term, s.text[loc[0]:loc[1]], glossaryRel, opts.CSSClass),
					opaque: true,
				})
				pos = loc[1]
			}
			if pos < len(s.text) {
				next = append(next, span{text: s.text[pos:]})
			}
		}
		spans = next

		if matched {
			linked[term.Anchor] = true
			changed = true
		}
	}

	if !changed {
		return text, false
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.text)
	}
	return b.String(), true
}

// termPattern builds a word-bounded matcher over all of a term's searchable
// forms, longest-form ordering handled by the caller's term ordering.
func termPattern(term *glossary.Term, caseSensitive bool) (*regexp.Regexp, error) {
	forms := term.SearchableForms()
	quoted := make([]string, len(forms))
	for i, f := range forms {
		quoted[i] = regexp.QuoteMeta(f)
	}
	pattern := `\b(` + strings.Join(quoted, "|") + `)\b`
	if !caseSensitive {
		pattern = `(?i)` + pattern
	}
	return regexp.Compile(pattern)
}

// linkFragment renders the inline HTML link for one matched occurrence. The
// matched text keeps its original casing and spelling.
func linkFragment(term *glossary.Term, matched, glossaryRel, cssClass string) string {
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(glossaryRel)
	b.WriteString("#")
	b.WriteString(term.Anchor)
	b.WriteString(`"`)
	if term.Definition != "" {
		b.WriteString(` title="`)
		b.WriteString(escapeHTML(term.Definition))
		b.WriteString(`"`)
	}
	b.WriteString(` class="`)
	b.WriteString(cssClass)
	b.WriteString(`">`)
	b.WriteString(escapeHTML(matched))
	b.WriteString(`</a>`)
	return b.String()
}

// escapeHTML escapes the characters that would break out of an attribute
// value or the link text.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return strings.ReplaceAll(s, `"`, "&quot;")
}
