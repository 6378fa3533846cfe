package commands

import (
	"github.com/spf13/cobra"

	"github.com/moneytrack-dev/moneytrack/internal/tracker"
)

func newSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
	}
	cmd.AddCommand(newSettingsShowCommand(), newSettingsSetCommand())
	return cmd
}

func newSettingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings and categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Renderer.SetActive(tracker.ViewSettings)
			app.Renderer.Settings()
			return nil
		},
	}
}

func newSettingsSetCommand() *cobra.Command {
	var currency string
	var dateFormat string
	var theme string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change currency, date format or theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Service.UpdateSettings(currency, dateFormat, theme)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "INR, EUR, GBP or USD")
	cmd.Flags().StringVar(&dateFormat, "date-format", "", "MM/DD/YYYY, DD/MM/YYYY or YYYY-MM-DD")
	cmd.Flags().StringVar(&theme, "theme", "", "display theme")

	return cmd
}
