package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/SixArm/ssh-keygen-pro/internal/errors"
)

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for ssh-keygen-pro.

Examples:
  # Bash
  ssh-keygen-pro completion bash > /etc/bash_completion.d/ssh-keygen-pro

  # Zsh
  ssh-keygen-pro completion zsh > "${fpath[1]}/_ssh-keygen-pro"

  # Fish
  ssh-keygen-pro completion fish > ~/.config/fish/completions/ssh-keygen-pro.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
