// Package completion provides shell completion generation commands.
package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// shell describes one supported completion target.
type shell struct {
	name    string
	title   string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name:  "bash",
		title: "bash",
		install: `To load completions in your current shell session:

  source <(cnmap completion bash)

To load completions for every new session:

  # Linux
  cnmap completion bash > /etc/bash_completion.d/cnmap

  # macOS (requires bash-completion)
  cnmap completion bash > $(brew --prefix)/etc/bash_completion.d/cnmap`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
	},
	{
		name:  "zsh",
		title: "zsh",
		install: `If shell completion is not already enabled in your environment,
enable it by running once:

  echo "autoload -U compinit; compinit" >> ~/.zshrc

To load completions for every new session:

  cnmap completion zsh > "${fpath[1]}/_cnmap"

You will need to start a new shell for this setup to take effect.`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name:  "fish",
		title: "fish",
		install: `To load completions in your current shell session:

  cnmap completion fish | source

To load completions for every new session:

  cnmap completion fish > ~/.config/fish/completions/cnmap.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name:  "powershell",
		title: "PowerShell",
		install: `To load completions in your current shell session:

  cnmap completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output of the above
command to your PowerShell profile.`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cnmap.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newCmdShell(s))
	}

	return cmd
}

func newCmdShell(s shell) *cobra.Command {
	return &cobra.Command{
		Use:                   s.name,
		Short:                 fmt.Sprintf("Generate %s completion script", s.title),
		Long:                  fmt.Sprintf("Generate %s completion script for cnmap.\n\n%s", s.title, s.install),
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
