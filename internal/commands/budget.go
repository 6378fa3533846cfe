package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moneytrack-dev/moneytrack/internal/model"
	"github.com/moneytrack-dev/moneytrack/internal/tracker"
)

func newBudgetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category budgets",
	}
	cmd.AddCommand(newBudgetSetCommand(), newBudgetListCommand(), newBudgetDeleteCommand())
	return cmd
}

func newBudgetSetCommand() *cobra.Command {
	var params tracker.SetBudgetParams

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create a budget, or update the existing one for the same category and period",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Service.SetBudget(params)
		},
	}

	cmd.Flags().StringVar(&params.CategoryID, "category", "", "category id (required)")
	cmd.Flags().StringVar(&params.Amount, "amount", "", "budget amount (required)")
	cmd.Flags().StringVar(&params.Period, "period", model.PeriodMonthly, "budget period")

	return cmd
}

func newBudgetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budgets with current-month progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Renderer.SetActive(tracker.ViewBudgets)
			app.Renderer.Budgets()
			return nil
		},
	}
}

func newBudgetDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			budgetID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid budget id %q", args[0])
			}

			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Service.DeleteBudget(budgetID)
		},
	}
}
