// Package check provides the check command for termlink.
package check

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/open-doc-collective/termlink/internal/book"
	"github.com/open-doc-collective/termlink/internal/config"
	"github.com/open-doc-collective/termlink/internal/pipeline"
	"github.com/open-doc-collective/termlink/internal/view"
)

type checkOptions struct {
	dir        string
	configPath string
	output     string
	noColor    bool
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and glossary",
		Long: `Validate the termlink configuration and glossary.

Checks that the config file parses, reports invalid exclusion patterns,
verifies the glossary page exists and yields terms, and fails on aliases
that conflict with another term's name.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runCheck(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "root directory of the document tree")

	return cmd
}

func runCheck(opts *checkOptions) error {
	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.configPath == "" {
		opts.configPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(opts.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
		renderer.Warning(fmt.Sprintf("no config file at %s, using defaults", opts.configPath))
	} else if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
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

	renderer.Success(fmt.Sprintf("Glossary %s defines %d terms.", cfg.GlossaryPath, len(terms)))
	renderer.Success(fmt.Sprintf("%d documents loaded, %d exclusion patterns active.", len(docs), len(excludes)))
	return nil
}
