package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for archpick.

To load completions:

Bash:
  $ source <(archpick completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ archpick completion bash > /etc/bash_completion.d/archpick
  # macOS:
  $ archpick completion bash > $(brew --prefix)/etc/bash_completion.d/archpick

Zsh:
  # To load completions for each session, execute once:
  $ archpick completion zsh > "${fpath[1]}/_archpick"

Fish:
  $ archpick completion fish > ~/.config/fish/completions/archpick.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			}
			return nil
		},
	}
}
