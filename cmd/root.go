package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hyde-project/hydeshell/core/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	return config.Load(afero.NewOsFs(), cfgPath)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hydeshell",
	Short: "HyDE interactive shell glue",
	Long: `Drop-in reimplementation of HyDE's shell glue: the deprecated waybar.sh
wrapper and the alias/abbreviation table installed at session start.`,
}

var (
	ColorBoldCyan   = color.New(color.FgCyan, color.Bold)
	ColorBoldYellow = color.New(color.FgYellow, color.Bold)
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// dispatchArgv rewrites argv for multicall installs. The wrapper is also
// installed as a waybar.sh symlink pointing at this binary, dispatch on
// argv[0] so the old call sites keep working.
func dispatchArgv(args []string) []string {
	if len(args) > 0 && filepath.Base(args[0]) == "waybar.sh" {
		return append([]string{args[0], "waybar"}, args[1:]...)
	}
	return args
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Args = dispatchArgv(os.Args)

	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
