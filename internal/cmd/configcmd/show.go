package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/termlink/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Long: `Display the effective termlink configuration with source indicators
showing whether each value comes from the defaults, the config file, or
an environment variable.`,
		Example: `  # Show the effective config
  termlink config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.DefaultConfigPath()
			}
			return runShow(cmd.OutOrStdout(), configPath, noColor)
		},
	}

	return cmd
}

func runShow(out io.Writer, configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	fileCfg, fileErr := config.Load(configPath)
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value string, inFile bool, envVars ...string) {
		_, _ = bold.Fprintf(out, "%-18s", label+":")
		fmt.Fprint(out, value)

		source := "default"
		if inFile && fileErr == nil {
			source = "config"
		}
		for _, envVar := range envVars {
			if v := os.Getenv(envVar); v != "" && v == value {
				source = envVar
				break
			}
		}
		_, _ = dim.Fprintf(out, "  (source: %s)\n", source)
	}

	inFile := func(get func(*config.Config) string) bool {
		return fileErr == nil && get(fileCfg) == get(cfg)
	}

	printField("glossary_path", cfg.GlossaryPath,
		inFile(func(c *config.Config) string { return c.GlossaryPath }),
		"TERMLINK_GLOSSARY_PATH")
	printField("css_class", cfg.CSSClass,
		inFile(func(c *config.Config) string { return c.CSSClass }),
		"TERMLINK_CSS_CLASS")
	printField("link_first_only", strconv.FormatBool(cfg.LinkFirstOnly),
		inFile(func(c *config.Config) string { return strconv.FormatBool(c.LinkFirstOnly) }))
	printField("case_sensitive", strconv.FormatBool(cfg.CaseSensitive),
		inFile(func(c *config.Config) string { return strconv.FormatBool(c.CaseSensitive) }))

	if len(cfg.ExcludePages) > 0 {
		_, _ = bold.Fprintf(out, "%-18s", "exclude_pages:")
		fmt.Fprintln(out, strings.Join(cfg.ExcludePages, ", "))
	}
	if len(cfg.Aliases) > 0 {
		_, _ = bold.Fprintf(out, "%-18s", "aliases:")
		fmt.Fprintf(out, "%d terms\n", len(cfg.Aliases))
	}

	fmt.Fprintln(out)
	_, _ = dim.Fprintf(out, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(out, "(file not found, using defaults)")
	}

	return nil
}
