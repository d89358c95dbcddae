// Package preprocess implements the mdBook preprocessor protocol.
package preprocess

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/termlink/internal/book"
	"github.com/open-doc-collective/termlink/internal/config"
	"github.com/open-doc-collective/termlink/internal/pipeline"
)

// NewCmdPreprocess creates the preprocess command.
func NewCmdPreprocess() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preprocess [supports <renderer>]",
		Short: "Run as an mdBook preprocessor",
		Long: `Run termlink as an mdBook preprocessor.

mdBook writes a [context, book] JSON pair to stdin and reads the
rewritten book JSON from stdout. Configure in book.toml:

  [preprocessor.termlink]
  command = "termlink preprocess"
  glossary-path = "reference/glossary.md"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			// The "supports <renderer>" handshake answers through the exit
			// code. Only HTML output is supported.
			if len(args) >= 2 && args[0] == "supports" {
				if args[1] == "html" {
					os.Exit(0)
				}
				os.Exit(1)
			}
			return runPreprocess(os.Stdin, os.Stdout, os.Stderr)
		},
	}
	return cmd
}

func runPreprocess(in io.Reader, out, errOut io.Writer) error {
	ctx, bk, err := book.ParsePreprocessorInput(in)
	if err != nil {
		return err
	}

	cfg, err := config.FromMdBookContext(ctx.PreprocessorTable("termlink"))
	if err != nil {
		return err
	}

	if err := processBook(bk, cfg, errOut); err != nil {
		return err
	}

	return json.NewEncoder(out).Encode(bk)
}

// rewriteDoc rewrites one document. Replaceable so chapter failure handling
// can be driven in tests.
var rewriteDoc = pipeline.Rewrite

// processBook rewrites every chapter of the book in place. A chapter that
// fails to rewrite keeps its original content and the failure is reported on
// the error stream; remaining chapters still process.
func processBook(bk *book.Book, cfg *config.Config, errOut io.Writer) error {
	var docs []book.Document
	bk.ForEachChapter(func(ch *book.Chapter) {
		if ch.Path == nil {
			return
		}
		docs = append(docs, book.Document{Path: *ch.Path, Content: []byte(ch.Content)})
	})

	terms, err := pipeline.Terms(docs, cfg)
	if err != nil {
		return err
	}
	if len(terms) == 0 {
		color.New(color.FgYellow).Fprintf(errOut, "termlink: no glossary terms found in %s\n", cfg.GlossaryPath)
		return nil
	}

	excludes, warnings := cfg.CompileExcludes()
	for _, w := range warnings {
		color.New(color.FgYellow).Fprintf(errOut, "termlink: %s\n", w)
	}

	bk.ForEachChapter(func(ch *book.Chapter) {
		if ch.Path == nil {
			return
		}
		doc := book.Document{Path: *ch.Path, Content: []byte(ch.Content)}
		content, changed, err := rewriteDoc(doc, terms, cfg, excludes)
		if err != nil {
			color.New(color.FgRed).Fprintf(errOut, "termlink: failed to process %s: %v\n", doc.Path, err)
			return
		}
		if changed {
			ch.Content = string(content)
		}
	})

	fmt.Fprintf(errOut, "termlink: linked %d glossary terms\n", len(terms))
	return nil
}
