package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"iconpack/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active mapping rules",
	Long: `Print the whitelist, substitution and short name tables in effect, as YAML.

The output is a valid --config file and a starting point for custom rules.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.DumpRules(rules)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
