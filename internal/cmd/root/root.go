// Package root provides the root command for the termlink CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/termlink/internal/cmd/check"
	"github.com/open-doc-collective/termlink/internal/cmd/completion"
	"github.com/open-doc-collective/termlink/internal/cmd/configcmd"
	"github.com/open-doc-collective/termlink/internal/cmd/initcmd"
	"github.com/open-doc-collective/termlink/internal/cmd/link"
	"github.com/open-doc-collective/termlink/internal/cmd/preprocess"
	"github.com/open-doc-collective/termlink/internal/cmd/terms"
	"github.com/open-doc-collective/termlink/internal/version"
	"github.com/open-doc-collective/termlink/internal/view"
)

// NewCmdRoot creates the root command for termlink.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termlink",
		Short: "Link glossary terms across a markdown book",
		Long: `termlink rewrites markdown documentation so that glossary terms
become links to their definitions.

Terms are read from a glossary page written as a markdown definition
list. Occurrences in prose link to the matching glossary anchor; text in
code blocks, inline code, links, images, and headings is never touched.

Get started by running: termlink init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			return view.ValidateFormat(output)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: termlink.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.SetVersionTemplate(version.Long() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(link.NewCmdLink())
	cmd.AddCommand(terms.NewCmdTerms())
	cmd.AddCommand(check.NewCmdCheck())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(preprocess.NewCmdPreprocess())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
