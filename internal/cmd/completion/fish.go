package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for termlink.

To load completions in your current shell session:

  termlink completion fish | source

To load completions for every new session:

  termlink completion fish > ~/.config/fish/completions/termlink.fish`,
		Example: `  # Load in current session
  termlink completion fish | source

  # Install permanently
  termlink completion fish > ~/.config/fish/completions/termlink.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
