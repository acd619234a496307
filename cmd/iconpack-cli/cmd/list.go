package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"iconpack/internal/adapters/filesystem"
	"iconpack/internal/adapters/svg"
	"iconpack/internal/application/commands"
	"iconpack/internal/ports"
)

var withSize bool

var listCmd = &cobra.Command{
	Use:   "list <ij-sources>",
	Short: "List the icons that would go into the pack",
	Long: `List every new UI icon that resolves to an old UI file, with its pack
identifier, how it was resolved and the file it maps to.

Examples:
  iconpack-cli list ~/src/intellij-community
  iconpack-cli list ~/src/intellij-community --size`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var inspector ports.SVGInspector
		if withSize {
			inspector = svg.NewInspector()
		}

		listCmd := commands.NewListIconsCommand(repo, inspector, filesystem.ExpandHome(args[0]), rules)
		result, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		for _, icon := range result.Icons {
			if icon.Size != nil {
				fmt.Printf("[%s] %s %s %gx%g\n", icon.Resolution, icon.ShortKey, icon.SourcePath, icon.Size.Width, icon.Size.Height)
			} else {
				fmt.Printf("[%s] %s %s\n", icon.Resolution, icon.ShortKey, icon.SourcePath)
			}
		}

		s := result.Stats
		fmt.Printf("%d icons (%d direct, %d substituted, %d unresolved)\n", s.Resolved(), s.Direct, s.Substituted, s.Unresolved)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&withSize, "size", false, "read the view box size of each old UI icon")
	rootCmd.AddCommand(listCmd)
}
