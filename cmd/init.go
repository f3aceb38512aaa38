package cmd

import (
	"github.com/hyde-project/hydeshell/core/aliases"
	"github.com/hyde-project/hydeshell/core/shellgen"
	"github.com/spf13/cobra"
)

var noPrompt bool

// initCmd prints the per-shell rc lines
var initCmd = &cobra.Command{
	Use:   "init SHELL",
	Short: "Print the alias table and prompt hook for a shell.",
	Long: `Print the rc lines that install the alias/abbreviation table and the
interactivity-guarded prompt hook. Add to your shell startup file, e.g.:

  eval "$(hydeshell init zsh)"    # ~/.zshrc
  hydeshell init fish | source    # ~/.config/fish/config.fish`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"zsh", "bash", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dialect, err := shellgen.ParseDialect(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		opts := shellgen.Options{
			Table:        aliases.Table(cfg),
			PromptEngine: cfg.PromptEngine,
		}
		if noPrompt {
			opts.PromptEngine = ""
		}

		return shellgen.Render(cmd.OutOrStdout(), dialect, opts)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "skip the prompt engine hook")
}
