package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moneytrack-dev/moneytrack/internal/tracker"
)

func newCategoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage transaction categories",
	}
	cmd.AddCommand(newCategoryAddCommand(), newCategoryListCommand(), newCategoryDeleteCommand())
	return cmd
}

func newCategoryAddCommand() *cobra.Command {
	var name string
	var typ string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Service.AddCategory(name, typ)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name (required)")
	cmd.Flags().StringVar(&typ, "type", "", "income or expense (required)")

	return cmd
}

func newCategoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show settings and categories",
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

func newCategoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category and everything referencing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Service.DeleteCategory(categoryID)
		},
	}
}
