package cmd

import (
	"fmt"
	"os"

	"github.com/hyde-project/hydeshell/core/config"
	"github.com/hyde-project/hydeshell/core/launcher"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// waybarCmd is the deprecated waybar.sh wrapper: print the notice, then
// hand off to the theming helper installed next to this binary.
var waybarCmd = &cobra.Command{
	Use:    "waybar",
	Short:  "Deprecated wrapper around the waybar.py theming helper.",
	Hidden: true,
	// The original wrapper ignored its own argv entirely. Keep that
	// contract: nothing is parsed, nothing is passed through.
	DisableFlagParsing: true,
	RunE:               runWaybar,
}

func runWaybar(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return err
	}

	status, err := delegate(cmd, cfg, exe)
	if err != nil {
		return err
	}
	if status != 0 {
		os.Exit(status)
	}
	return nil
}

// delegate resolves the helper next to exe, sources the control files and
// runs the fixed invocation, returning the helper's exit status.
func delegate(cmd *cobra.Command, cfg *config.Configuration, exe string) (int, error) {
	helperPath, err := launcher.Resolve(launcher.HostOS(), exe, cfg.Helper)
	if err != nil {
		return 1, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return 1, err
	}

	ctl, err := config.SourceControlFiles(afero.NewOsFs(), config.ControlFilePaths(os.Getenv, home))
	if err != nil {
		return 1, err
	}

	// The notice goes out exactly once, before any helper output.
	printNotice(cmd, cfg.DeprecationNotice)

	return launcher.New(helperPath, ctl).Run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func printNotice(cmd *cobra.Command, notice string) {
	out := cmd.OutOrStdout()
	if isTerminal(out) {
		ColorBoldYellow.Fprintln(out, notice)
		return
	}
	fmt.Fprintln(out, notice)
}

func init() {
	rootCmd.AddCommand(waybarCmd)
}
