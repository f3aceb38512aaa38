package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"github.com/hyde-project/hydeshell/core/aliases"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// tryCmd is an interactive loop for previewing expansions before wiring
// them into a shell.
var tryCmd = &cobra.Command{
	Use:   "try",
	Short: "Interactively preview abbreviation expansions.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		expander := aliases.NewExpander(aliases.Table(cfg))

		rl, err := readline.NewEx(&readline.Config{
			Prompt: "hydeshell> ",
			FuncIsTerminal: func() bool {
				return isatty.IsTerminal(os.Stdin.Fd())
			},
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		for {
			line, err := rl.Readline()
			switch {
			case err == io.EOF:
				return nil // Input closed, quit.
			case err == readline.ErrInterrupt:
				continue // Interrupt clears the line.
			case err != nil:
				return err
			case len(line) == 0:
				continue
			}

			expanded, expandErr := expander.ExpandLine(line)
			if expandErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "hydeshell: %v\n", expandErr)
				continue
			}

			if expanded != line && isTerminal(cmd.OutOrStdout()) {
				ColorBoldCyan.Fprintln(cmd.OutOrStdout(), expanded)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), expanded)
		}
	},
}

func init() {
	rootCmd.AddCommand(tryCmd)
}
