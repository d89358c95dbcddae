// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage termlink configuration",
		Long:  `Commands for viewing the effective termlink configuration.`,
	}

	cmd.AddCommand(NewCmdShow())

	return cmd
}
