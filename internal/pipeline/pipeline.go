// Package pipeline wires glossary extraction and the linker together for a
// whole document set. Fatal problems (missing glossary, alias conflicts)
// abort before any document is touched; per-document problems degrade to a
// no-op for that one document.
package pipeline

import (
	"bytes"

	"github.com/open-doc-collective/termlink/internal/book"
	"github.com/open-doc-collective/termlink/internal/config"
	"github.com/open-doc-collective/termlink/pkg/glossary"
	"github.com/open-doc-collective/termlink/pkg/linker"
)

// Terms extracts the glossary terms for a document set, applies configured
// aliases, and verifies alias conflicts. All failure modes here are fatal.
func Terms(docs []book.Document, cfg *config.Config) ([]glossary.Term, error) {
	gdoc, err := book.FindGlossary(docs, cfg.GlossaryPath)
	if err != nil {
		return nil, err
	}
	content, err := glossary.NormalizeContent(gdoc.Path, gdoc.Content)
	if err != nil {
		return nil, err
	}
	terms := glossary.ApplyAliases(glossary.ExtractTerms(content), cfg.Aliases)
	if err := glossary.CheckAliasConflicts(terms); err != nil {
		return nil, err
	}
	return terms, nil
}

// Rewrite links terms in a single document. The glossary page itself and
// excluded pages come back byte-for-byte unmodified. On a linker error the
// original content is returned alongside the error so the caller can report
// and continue.
func Rewrite(doc book.Document, terms []glossary.Term, cfg *config.Config, excludes []string) ([]byte, bool, error) {
	if cfg.IsGlossaryPath(doc.Path) || config.ShouldExclude(excludes, doc.Path) {
		return doc.Content, false, nil
	}

	rel := linker.RelativePathToGlossary(doc.Path, glossary.HTMLPath(cfg.GlossaryPath))
	out, err := linker.AddTermLinks(doc.Content, terms, rel, linker.Options{
		LinkFirstOnly: cfg.LinkFirstOnly,
		CSSClass:      cfg.CSSClass,
		CaseSensitive: cfg.CaseSensitive,
	})
	if err != nil {
		return doc.Content, false, err
	}
	return out, !bytes.Equal(out, doc.Content), nil
}
