package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"iconpack/internal/adapters/filesystem"
	"iconpack/internal/application/commands"
	"iconpack/internal/config"
)

var outputDir string

var buildCmd = &cobra.Command{
	Use:   "build <ij-sources> [version]",
	Short: "Build the icon pack",
	Long: `Scan <ij-sources>/platform/icons/src for new UI icons, resolve their old UI
counterparts and write NewUIFilesToOldUITheme.json.

An existing pack is replaced. The version defaults to 1.

Examples:
  iconpack-cli build ~/src/intellij-community
  iconpack-cli build ~/src/intellij-community 4 --output-dir ~/packs`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		version := ""
		if len(args) > 1 {
			version = args[1]
		}

		buildCmd := commands.NewBuildIconPackCommand(
			repo,
			filesystem.NewPackStore(outputDir),
			reporter,
			filesystem.ExpandHome(args[0]),
			version,
			rules,
		)
		result, err := buildCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&outputDir, "output-dir", "o", config.DefaultOutputDir, "directory the icon pack is written to")
	rootCmd.AddCommand(buildCmd)
}
