package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneytrack-dev/moneytrack/internal/model"
	"github.com/moneytrack-dev/moneytrack/internal/report"
	"github.com/moneytrack-dev/moneytrack/internal/tracker"
)

func newTxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and inspect transactions",
	}
	cmd.AddCommand(newTxAddCommand(), newTxListCommand(), newTxDeleteCommand())
	return cmd
}

func newTxAddCommand() *cobra.Command {
	var params tracker.AddTransactionParams

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if params.Date == "" {
				params.Date = time.Now().Format(model.DateLayout)
			}
			return app.Service.AddTransaction(params)
		},
	}

	cmd.Flags().StringVar(&params.Type, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&params.Amount, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&params.Description, "description", "", "description (required)")
	cmd.Flags().StringVar(&params.CategoryID, "category", "", "category id (required)")
	cmd.Flags().StringVar(&params.Date, "date", "", "date as YYYY-MM-DD (default today)")

	return cmd
}

func newTxListCommand() *cobra.Command {
	var search string
	var category int64
	var txType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, filtered and sorted by date",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Renderer.SetActive(tracker.ViewTransactions)
			app.Renderer.Transactions(report.FilterOptions{
				Search:     search,
				CategoryID: category,
				Type:       model.TxType(txType),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match description or category name")
	cmd.Flags().Int64Var(&category, "category", 0, "filter by category id")
	cmd.Flags().StringVar(&txType, "type", "", "filter by type (income or expense)")

	return cmd
}

func newTxDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Service.DeleteTransaction(txID)
		},
	}
}
