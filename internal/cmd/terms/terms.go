// Package terms provides the terms command for termlink.
package terms

import (
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/termlink/internal/book"
	"github.com/open-doc-collective/termlink/internal/config"
	"github.com/open-doc-collective/termlink/internal/pipeline"
	"github.com/open-doc-collective/termlink/internal/view"
)

type termsOptions struct {
	dir        string
	configPath string
	output     string
	noColor    bool
}

// NewCmdTerms creates the terms command.
func NewCmdTerms() *cobra.Command {
	opts := &termsOptions{}

	cmd := &cobra.Command{
		Use:     "terms",
		Aliases: []string{"ls", "list"},
		Short:   "List the terms extracted from the glossary",
		Example: `  # Show the glossary terms and their anchors
  termlink terms --dir src

  # Output as JSON
  termlink terms --dir src -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runTerms(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "root directory of the document tree")

	return cmd
}

func runTerms(opts *termsOptions) error {
	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.configPath == "" {
		opts.configPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadWithEnv(opts.configPath)
	if err != nil {
		return err
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
		renderer.RenderText("No glossary terms found.")
		return nil
	}

	headers := []string{"NAME", "ANCHOR", "SHORT", "DEFINITION"}
	var rows [][]string
	for _, t := range terms {
		rows = append(rows, []string{
			t.Name,
			t.Anchor,
			t.ShortName,
			view.Truncate(t.Definition, 60),
		})
	}
	renderer.RenderTable(headers, rows)
	return nil
}
