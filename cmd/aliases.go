package cmd

import (
	"fmt"

	"github.com/hyde-project/hydeshell/core/aliases"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var aliasesFormat string

var aliasesCmd = &cobra.Command{
	Use:     "aliases",
	Aliases: []string{"abbr"},
	Short:   "Show the alias/abbreviation table.",
	Args:    cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		table := aliases.Table(cfg)

		switch aliasesFormat {
		case "text":
			return printAliasText(cmd, table)
		case "yaml":
			out, err := yaml.Marshal(table)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		default:
			return fmt.Errorf("unknown format %q (want text or yaml)", aliasesFormat)
		}
	},
}

func printAliasText(cmd *cobra.Command, table []aliases.Alias) error {
	w := cmd.OutOrStdout()
	useColor := isTerminal(w)

	for _, alias := range table {
		// Pad before colorizing, escape codes would break the column.
		token := fmt.Sprintf("%-8s", alias.Token)
		if useColor {
			token = ColorBoldCyan.Sprint(token)
		}
		fmt.Fprintf(w, "%s %-12s %s\n", token, alias.Kind, alias.Expansion)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(aliasesCmd)
	aliasesCmd.Flags().StringVar(&aliasesFormat, "format", "text", "output format (text|yaml)")
}
