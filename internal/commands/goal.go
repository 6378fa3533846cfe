package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneytrack-dev/moneytrack/internal/tracker"
)

func newGoalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}
	cmd.AddCommand(newGoalAddCommand(), newGoalProgressCommand(), newGoalListCommand(), newGoalDeleteCommand())
	return cmd
}

func newGoalAddCommand() *cobra.Command {
	var params tracker.AddGoalParams

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Service.AddGoal(params)
		},
	}

	cmd.Flags().StringVar(&params.Title, "title", "", "goal title (required)")
	cmd.Flags().StringVar(&params.TargetAmount, "target", "", "target amount (required)")
	cmd.Flags().StringVar(&params.CurrentAmount, "current", "", "starting amount (default 0)")
	cmd.Flags().StringVar(&params.TargetDate, "date", "", "target date as YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&params.Description, "description", "", "optional description")

	return cmd
}

func newGoalProgressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <amount>",
		Short: "Add to a goal's saved amount, clamped at the target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal id %q", args[0])
			}
			delta, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Service.UpdateGoalProgress(goalID, delta)
		},
	}
}

func newGoalListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show goals with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Renderer.SetActive(tracker.ViewGoals)
			app.Renderer.Goals()
			return nil
		},
	}
}

func newGoalDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal id %q", args[0])
			}

			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Service.DeleteGoal(goalID)
		},
	}
}
