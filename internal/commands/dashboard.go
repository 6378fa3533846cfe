package commands

import (
	"github.com/spf13/cobra"

	"github.com/moneytrack-dev/moneytrack/internal/tracker"
)

func newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the monthly summary, budget overview and recent transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Renderer.SetActive(tracker.ViewDashboard)
			app.Renderer.Dashboard()
			return nil
		},
	}
}

func newAnalyticsCommand() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show the income/expense trend and expense breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Renderer.SetActive(tracker.ViewAnalytics)
			app.Renderer.Analytics(months)
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 6, "number of months in the trend")

	return cmd
}
