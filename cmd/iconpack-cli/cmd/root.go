package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"iconpack/internal/adapters/console"
	"iconpack/internal/adapters/filesystem"
	"iconpack/internal/config"
	"iconpack/internal/domain"
	"iconpack/internal/ports"
)

var (
	configPath string
	rules      domain.Rules
	repo       ports.IconRepository
	reporter   = console.NewReporter(os.Stdout, os.Stderr)
)

var rootCmd = &cobra.Command{
	Use:   "iconpack-cli",
	Short: "Generate an old UI icon pack from IntelliJ sources",
	Long: `iconpack-cli builds NewUIFilesToOldUITheme.json, an icon pack that maps
every new UI icon of an IntelliJ source tree back to its old UI counterpart.

The pack content is base64 SVG data, so it can be imported as-is by the
icon pack plugin.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.LoadRules(filesystem.ExpandHome(configPath))
		if err != nil {
			return err
		}
		rules = loaded
		repo = filesystem.NewIconRepository()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reporter.Err("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "rules file (YAML, JSON or TOML) overriding the built-in tables")
}
