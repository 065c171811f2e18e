package dashboard

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"adminboard/config"
	"adminboard/pkg/log"
	"adminboard/pkg/prefs"
	"adminboard/pkg/sdk"
)

// App wires the dashboard commands to their dependencies.
type App struct {
	l      log.Logger
	cfg    *config.Config
	client *sdk.Client
	prefs  *prefs.Store
	out    io.Writer
	errOut io.Writer
	ask    Confirmer
}

// NewApp builds the dashboard from configuration.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	store, err := prefs.New("")
	if err != nil {
		return nil, err
	}

	client := sdk.New(logger, sdk.Config{
		BaseURL:          cfg.Client.BaseURL,
		RequestTimeout:   cfg.Client.RequestTimeout,
		RetryBudget:      cfg.Client.RetryBudget,
		RetryMaxInterval: cfg.Client.RetryMaxInterval,
		CacheTTL:         cfg.Client.CacheTTL,
	})

	return &App{
		l:      logger,
		cfg:    cfg,
		client: client,
		prefs:  store,
		out:    os.Stdout,
		errOut: os.Stderr,
		ask:    stdinConfirmer{},
	}, nil
}

// Root returns the root command with all subcommands registered.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Admin dashboard for the users API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.listCmd(),
		a.activateCmd(),
		a.deactivateCmd(),
		a.searchCmd(),
		a.columnsCmd(),
	)
	return root
}

// Execute runs the CLI. Panics anywhere below are caught here and shown
// as an error panel instead of a stack trace, and the process still
// exits non-zero.
func Execute() int {
	defer func() {
		if r := recover(); r != nil {
			renderCrashPanel(os.Stderr, r)
			os.Exit(2)
		}
	}()

	app, err := NewApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to start dashboard:", err)
		return 1
	}

	if err := app.Root().Execute(); err != nil {
		app.renderErrorPanel(err)
		return 1
	}
	return 0
}
