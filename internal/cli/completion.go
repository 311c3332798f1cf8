package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// completionCommand emits a completion script for the requested shell.
// Completing subcommand and flag names makes the layout/render/inspect
// workflow much quicker to drive from a terminal.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate a shell completion script",
		Long: `Write a completion script for statecanvas to stdout.

Supported shells: bash, zsh, fish, powershell.

Load it for the current session:

  $ source <(statecanvas completion bash)
  $ statecanvas completion fish | source
  PS> statecanvas completion powershell | Out-String | Invoke-Expression

Or install it permanently:

  $ statecanvas completion bash > /etc/bash_completion.d/statecanvas
  $ statecanvas completion zsh > "${fpath[1]}/_statecanvas"
  $ statecanvas completion fish > ~/.config/fish/completions/statecanvas.fish

Zsh needs completion enabled first ("autoload -U compinit; compinit"
in ~/.zshrc), and a new shell after installing the script.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}

	return cmd
}
