// Package initcmd provides the init command for termlink.
package initcmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/termlink/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var glossaryPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize termlink configuration",
		Long: `Initialize termlink with an interactive setup.

This command will guide you through pointing termlink at your glossary
page and choosing matching behavior. The configuration is saved to
termlink.yml in the current directory.`,
		Example: `  # Interactive setup
  termlink init

  # Pre-populate the glossary path
  termlink init --glossary reference/glossary.md`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(glossaryPath)
		},
	}

	cmd.Flags().StringVar(&glossaryPath, "glossary", "", "glossary page path (e.g., reference/glossary.md)")

	return cmd
}

func runInit(prefillGlossary string) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := config.Default()
	if prefillGlossary != "" {
		cfg.GlossaryPath = prefillGlossary
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Glossary page").
				Description("Path of the glossary page, relative to your book's source root").
				Placeholder("reference/glossary.md").
				Value(&cfg.GlossaryPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("glossary path is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("CSS class").
				Description("Class applied to generated glossary links").
				Placeholder("glossary-term").
				Value(&cfg.CSSClass),

			huh.NewConfirm().
				Title("Link first occurrence only?").
				Description("Link each term at most once per page").
				Value(&cfg.LinkFirstOnly),

			huh.NewConfirm().
				Title("Case-sensitive matching?").
				Description("Match terms only with their exact casing").
				Value(&cfg.CaseSensitive),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  termlink terms --dir src")
	fmt.Println("  termlink link --dir src")

	return nil
}
