package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moneytrack-dev/moneytrack/internal/config"
	"github.com/moneytrack-dev/moneytrack/internal/log"
	"github.com/moneytrack-dev/moneytrack/internal/notify"
	"github.com/moneytrack-dev/moneytrack/internal/storage"
	"github.com/moneytrack-dev/moneytrack/internal/store"
	"github.com/moneytrack-dev/moneytrack/internal/tracker"
)

// App bundles everything a command needs: config, logger, the open
// database, the loaded store, the mutation service, and the renderer.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	DB       *storage.SQLite
	Store    *store.Store
	Service  *tracker.Service
	Renderer *Renderer
	Out      io.Writer
}

// openApp loads config, opens the database, loads the snapshot (falling
// back to defaults on failure), and wires the mutation service.
func openApp(cmd *cobra.Command) (*App, error) {
	configPath, _ := cmd.Flags().GetString("config")
	yes, _ := cmd.Flags().GetBool("yes")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.Log.Level),
		Component: log.ComponentCLI,
		Output:    cmd.ErrOrStderr(),
	})

	db, err := storage.Open(cfg.Data.Path)
	if err != nil {
		return nil, fmt.Errorf("opening data store: %w", err)
	}

	st := store.New(db, logger)
	if err := st.Load(); err != nil {
		logger.Warn("snapshot load failed, starting from defaults", log.FieldError, err)
	}

	out := cmd.OutOrStdout()
	renderer := NewRenderer(st, out)

	svc := tracker.New(tracker.Options{
		Store:     st,
		Logger:    logger,
		Notifier:  notify.Console{W: out},
		Refresher: renderer,
		Confirm:   confirmFunc(cmd, yes),
	})

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Store:    st,
		Service:  svc,
		Renderer: renderer,
		Out:      out,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}

// confirmFunc prompts on the command's streams, unless --yes was given.
func confirmFunc(cmd *cobra.Command, yes bool) tracker.ConfirmFunc {
	if yes {
		return func(string) bool { return true }
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	return func(prompt string) bool {
		fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
