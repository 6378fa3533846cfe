// Package commands is the presentation layer: cobra commands that collect
// user input, invoke the mutation service, and render derived views.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneytrack-dev/moneytrack/internal/buildinfo"
	"github.com/moneytrack-dev/moneytrack/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "moneytrack",
		Short:   "Personal finance tracking from the command line",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", config.DefaultFile, "path to config file")
	rootCmd.PersistentFlags().Bool("yes", false, "answer yes to confirmation prompts")

	rootCmd.AddCommand(
		newInitCommand(),
		newTxCommand(),
		newBudgetCommand(),
		newGoalCommand(),
		newCategoryCommand(),
		newDashboardCommand(),
		newAnalyticsCommand(),
		newSettingsCommand(),
		newExportCommand(),
		newImportCommand(),
		newClearCommand(),
	)

	return rootCmd
}
