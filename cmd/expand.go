package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/hyde-project/hydeshell/core/aliases"
	"github.com/spf13/cobra"
)

// expandCmd rewrites a single command line, for use by shell widgets.
var expandCmd = &cobra.Command{
	Use:   "expand -- LINE",
	Short: "Expand abbreviations in a single command line.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		line := strings.Join(args, " ")
		expanded, err := aliases.NewExpander(aliases.Table(cfg)).ExpandLine(line)
		if err != nil {
			// Widgets must never lose the user's input, so the line is
			// still printed unchanged.
			log.Printf("expand: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), expanded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
}
