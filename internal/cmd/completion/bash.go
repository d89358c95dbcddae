package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for termlink.

To load completions in your current shell session:

  source <(termlink completion bash)

To load completions for every new session:

  # Linux
  termlink completion bash > /etc/bash_completion.d/termlink

  # macOS (requires bash-completion)
  termlink completion bash > $(brew --prefix)/etc/bash_completion.d/termlink`,
		Example: `  # Load in current session
  source <(termlink completion bash)

  # Install permanently (Linux)
  termlink completion bash | sudo tee /etc/bash_completion.d/termlink > /dev/null

  # Install permanently (macOS with Homebrew)
  termlink completion bash > $(brew --prefix)/etc/bash_completion.d/termlink`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
