// Package book models the document set termlink operates on, whether loaded
// from a source directory or received over the mdBook preprocessor protocol.
package book

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Document is one page of the documentation set.
type Document struct {
	// Path is the slash-separated path relative to the book's source root.
	Path string
	// Content is the raw markup.
	Content []byte
}

// IsMarkdown reports whether the document is a markdown page eligible for
// term linking. HTML documents are loaded only so an HTML glossary can be
// found.
func (d Document) IsMarkdown() bool {
	switch strings.ToLower(filepath.Ext(d.Path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// LoadDir reads every markdown (and HTML) file under root into a document
// set, with paths relative to root, in walk order. Hidden directories are
// skipped.
func LoadDir(root string) ([]Document, error) {
	var docs []Document
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".md", ".markdown", ".html", ".htm":
		default:
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rel, err)
		}
		docs = append(docs, Document{Path: filepath.ToSlash(rel), Content: content})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load documents from %s: %w", root, err)
	}
	return docs, nil
}

// IsPathMatch reports whether docPath equals target or ends with target as a
// component-wise suffix.
func IsPathMatch(docPath, target string) bool {
	return docPath == target || strings.HasSuffix(docPath, "/"+target)
}

// FindGlossary locates the glossary document by exact path or component-wise
// suffix match. There is no best-effort mode: a missing glossary is an error.
func FindGlossary(docs []Document, glossaryPath string) (*Document, error) {
	for i := range docs {
		if IsPathMatch(docs[i].Path, glossaryPath) {
			return &docs[i], nil
		}
	}
	return nil, fmt.Errorf("glossary file not found: %s", glossaryPath)
}
