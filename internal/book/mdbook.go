package book

import (
	"encoding/json"
	"fmt"
	"io"
)

// Book is the mdBook book tree as exchanged over the preprocessor protocol.
type Book struct {
	Sections []BookItem `json:"sections"`
	// mdBook emits this marker field; echo it back untouched.
	NonExhaustive json.RawMessage `json:"__non_exhaustive,omitempty"`
}

// BookItem is one entry in the book tree. Chapter items are rewritten;
// separators, part titles, and any future variants pass through as raw JSON.
type BookItem struct {
	Chapter *Chapter
	raw     json.RawMessage
}

// Chapter mirrors mdBook's chapter JSON. Every field round-trips so the
// rewritten book differs from the input only where content changed.
type Chapter struct {
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Number      []uint     `json:"number"`
	SubItems    []BookItem `json:"sub_items"`
	Path        *string    `json:"path"`
	SourcePath  *string    `json:"source_path"`
	ParentNames []string   `json:"parent_names"`
}

// UnmarshalJSON parses Chapter variants into a typed Chapter and keeps every
// other variant verbatim.
func (b *BookItem) UnmarshalJSON(data []byte) error {
	var probe struct {
		Chapter *Chapter `json:"Chapter"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.Chapter != nil {
		b.Chapter = probe.Chapter
		return nil
	}
	b.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes a Chapter back in mdBook's enum encoding, or the
// original raw JSON for non-chapter items.
func (b BookItem) MarshalJSON() ([]byte, error) {
	if b.Chapter != nil {
		return json.Marshal(map[string]*Chapter{"Chapter": b.Chapter})
	}
	if b.raw == nil {
		return []byte("null"), nil
	}
	return b.raw, nil
}

// ForEachChapter visits every chapter in the tree, depth first in book order.
func (b *Book) ForEachChapter(fn func(*Chapter)) {
	var visit func(items []BookItem)
	visit = func(items []BookItem) {
		for i := range items {
			if ch := items[i].Chapter; ch != nil {
				fn(ch)
				visit(ch.SubItems)
			}
		}
	}
	visit(b.Sections)
}

// PreprocessorContext is the context half of the [context, book] pair mdBook
// writes to a preprocessor's stdin.
type PreprocessorContext struct {
	Root          string                     `json:"root"`
	Config        map[string]json.RawMessage `json:"config"`
	Renderer      string                     `json:"renderer"`
	MdBookVersion string                     `json:"mdbook_version"`
}

// PreprocessorTable returns the raw [preprocessor.<name>] table from
// book.toml, or nil when absent.
func (c *PreprocessorContext) PreprocessorTable(name string) json.RawMessage {
	raw, ok := c.Config["preprocessor"]
	if !ok {
		return nil
	}
	var tables map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tables); err != nil {
		return nil
	}
	return tables[name]
}

// ParsePreprocessorInput decodes the [context, book] JSON pair from r.
func ParsePreprocessorInput(r io.Reader) (*PreprocessorContext, *Book, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("failed to decode preprocessor input: %w", err)
	}
	if len(raw) != 2 {
		return nil, nil, fmt.Errorf("expected [context, book] pair, got %d elements", len(raw))
	}
	var ctx PreprocessorContext
	if err := json.Unmarshal(raw[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to decode preprocessor context: %w", err)
	}
	var bk Book
	if err := json.Unmarshal(raw[1], &bk); err != nil {
		return nil, nil, fmt.Errorf("failed to decode book: %w", err)
	}
	return &ctx, &bk, nil
}
