package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"iconpack/internal/adapters/filesystem"
	"iconpack/internal/adapters/svg"
	"iconpack/internal/adapters/tui"
	"iconpack/internal/application/commands"
)

var browseCmd = &cobra.Command{
	Use:   "browse <ij-sources>",
	Short: "Browse the pack icons interactively",
	Long: `Open a terminal browser over the icons that would go into the pack.
Type to fuzzy filter, press enter to copy the icon identifier.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listCmd := commands.NewListIconsCommand(repo, svg.NewInspector(), filesystem.ExpandHome(args[0]), rules)
		result, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if len(result.Icons) == 0 {
			fmt.Println("No icons found")
			return nil
		}
		return tui.Run(result.Icons)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
