// Package link provides the link command for termlink.
package link

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/open-doc-collective/termlink/internal/book"
	"github.com/open-doc-collective/termlink/internal/config"
	"github.com/open-doc-collective/termlink/internal/pipeline"
	"github.com/open-doc-collective/termlink/internal/view"
)

type linkOptions struct {
	dir        string
	write      bool
	configPath string
	output     string
	noColor    bool
}

// NewCmdLink creates the link command.
func NewCmdLink() *cobra.Command {
	opts := &linkOptions{}

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link glossary terms throughout a document tree",
		Long: `Link glossary terms throughout a markdown document tree.

Reads the glossary page, then rewrites every other markdown file so the
first occurrence of each term becomes a link to the glossary anchor.
Without --write the command only reports what would change.`,
		Example: `  # Dry run over the book's src directory
  termlink link --dir src

  # Apply changes in place
  termlink link --dir src --write`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runLink(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "root directory of the document tree")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "write changes back to the files")

	return cmd
}

func runLink(opts *linkOptions) error {
	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	excludes, warnings := cfg.CompileExcludes()
	for _, w := range warnings {
		renderer.Warning(w)
	}

	docs, err := book.LoadDir(opts.dir)
	if err != nil {
		return err
	}

	terms, err := pipeline.Terms(docs, cfg)
	if err != nil {
		return err
	}
	if len(terms) == 0 {
		renderer.Warning(fmt.Sprintf("no glossary terms found in %s", cfg.GlossaryPath))
		return nil
	}

	changedCount := 0
	var rows [][]string
	for _, doc := range docs {
		if !doc.IsMarkdown() {
			continue
		}
		content, changed, err := pipeline.Rewrite(doc, terms, cfg, excludes)
		if err != nil {
			renderer.Error(fmt.Sprintf("skipped %s: %v", doc.Path, err))
			continue
		}
		if !changed {
			continue
		}
		changedCount++
		if opts.write {
			target := filepath.Join(opts.dir, filepath.FromSlash(doc.Path))
			if err := os.WriteFile(target, content, 0644); err != nil {
				renderer.Error(fmt.Sprintf("failed to write %s: %v", doc.Path, err))
				continue
			}
			rows = append(rows, []string{doc.Path, "updated"})
		} else {
			rows = append(rows, []string{doc.Path, "would update"})
		}
	}

	if changedCount == 0 {
		renderer.RenderText("No documents needed linking.")
		return nil
	}

	renderer.RenderTable([]string{"FILE", "STATUS"}, rows)
	if opts.write {
		renderer.Success(fmt.Sprintf("Updated %d files with links to %d glossary terms.", changedCount, len(terms)))
	} else {
		renderer.RenderText(fmt.Sprintf("\n%d files would change. Run with --write to apply.", changedCount))
	}
	return nil
}

// loadConfig loads the config from the --config flag or the default path,
// falling back to defaults when no file exists.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
