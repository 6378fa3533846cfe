package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneytrack-dev/moneytrack/internal/config"
	"github.com/moneytrack-dev/moneytrack/internal/log"
	"github.com/moneytrack-dev/moneytrack/internal/storage"
	"github.com/moneytrack-dev/moneytrack/internal/store"
)

func newInitCommand() *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new MoneyTrack data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir, sample)
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "seed demonstration data")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, sample bool) error {
	cfg := config.Default()
	cfg.Data.Path = filepath.Join(dir, "data", "moneytrack.db")
	if err := config.Save(filepath.Join(dir, config.DefaultFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.Log.Level),
		Component: log.ComponentCLI,
		Output:    cmd.ErrOrStderr(),
	})

	db, err := storage.Open(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("opening data store: %w", err)
	}
	defer db.Close()

	st := store.New(db, logger)
	if err := st.Load(); err != nil {
		return fmt.Errorf("seeding defaults: %w", err)
	}

	if sample {
		now := time.Now()
		st.SetTransactions(store.SampleTransactions(now))
		st.SetBudgets(store.SampleBudgets(now))
		st.SetGoals(store.SampleGoals(now))
		if err := st.Save(); err != nil {
			return fmt.Errorf("writing sample data: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized MoneyTrack at %s\n", dir)
	return nil
}
