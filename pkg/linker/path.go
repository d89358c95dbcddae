package linker

import (
	"path"
	"strings"
)

// RelativePathToGlossary returns the purely lexical path from a document to
// the rendered glossary page: one "../" per directory component of the
// document's location, followed by the glossary path as given. No filesystem
// access is involved.
func RelativePathToGlossary(docPath, glossaryHTMLPath string) string {
	dir := path.Dir(docPath)
	depth := 0
	if dir != "." && dir != "/" && dir != "" {
		depth = len(strings.Split(dir, "/"))
	}
	return strings.Repeat("../", depth) + glossaryHTMLPath
}
