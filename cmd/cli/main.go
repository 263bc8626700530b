package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/pixdash/internal/adapter/api"
	"github.com/iho/pixdash/internal/adapter/notify"
	"github.com/iho/pixdash/internal/adapter/presenter"
	"github.com/iho/pixdash/internal/adapter/repository"
	"github.com/iho/pixdash/internal/infrastructure/auth"
	"github.com/iho/pixdash/internal/infrastructure/config"
	"github.com/iho/pixdash/internal/infrastructure/logger"
	"github.com/iho/pixdash/internal/usecase"
)

// skipRestore marks commands that run without restoring the stored session.
const skipRestore = "skip-restore"

// reportedError is a failure the notification surface already showed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// cli holds what every command shares once the root command has run.
type cli struct {
	cfg      *config.Config
	app      *usecase.App
	loc      *time.Location
	closeFn  func() error
	jsonOut  bool
	baseURL  string
	timeout  time.Duration
	logLevel string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := &cli{}
	err := newRootCmd(c, os.Stdout, os.Stderr).ExecuteContext(ctx)
	// PersistentPostRunE is skipped when a pre-run or the command fails, so
	// the store is released here.
	if cerr := c.close(); err == nil {
		err = cerr
	}
	if err == nil {
		return
	}

	var rErr *reportedError
	if !errors.As(err, &rErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}

func newRootCmd(c *cli, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pixdash",
		Short:         "pixdash banking dashboard",
		Long:          `A command line client for the PIX banking API: sign in, review accounts and transactions, and send instant transfers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(cmd, stderr); err != nil {
				return err
			}

			if cmd.Annotations[skipRestore] == "true" {
				return nil
			}

			return reported(c.app.Session.RestoreSession(cmd.Context()))
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&c.baseURL, "url", "", "Base URL of the banking API (overrides API_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "Request timeout (overrides API_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "Print JSON instead of tables")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.registerCmd(),
		c.whoamiCmd(),
		c.sessionCmd(),
		c.accountsCmd(),
		c.transactionsCmd(),
		c.transferCmd(),
		c.cancelCmd(),
		c.dashboardCmd(),
	)

	return rootCmd
}

// close releases the credential store opened by setup. It is safe to call
// more than once.
func (c *cli) close() error {
	if c.closeFn == nil {
		return nil
	}
	closeFn := c.closeFn
	c.closeFn = nil
	if err := closeFn(); err != nil {
		return fmt.Errorf("failed to close credential store: %w", err)
	}
	return nil
}

// setup loads configuration, applies flag overrides and wires the use cases.
func (c *cli) setup(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if c.baseURL != "" {
		cfg.APIBaseURL = c.baseURL
	}
	if c.timeout > 0 {
		cfg.APITimeout = c.timeout
	}
	switch {
	case c.logLevel != "":
		cfg.LogLevel = c.logLevel
	case os.Getenv("LOG_LEVEL") == "":
		// Keep the terminal for command output unless asked otherwise.
		cfg.LogLevel = "warn"
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console", Output: stderr})

	store, closeStore, err := repository.OpenCredentialStore(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}

	state := usecase.NewState()
	center := notify.NewCenter(cfg.NotificationTTL, notify.WithLogger(log), notify.WithSink(notify.NewPrinter(stderr)))

	c.cfg = cfg
	c.loc = loc
	c.closeFn = closeStore
	c.app = usecase.NewApp(usecase.AppConfig{
		API:                api.NewClient(cfg.APIBaseURL, state.Token, api.WithTimeout(cfg.APITimeout), api.WithLogger(log)),
		Store:              store,
		Inspector:          auth.NewInspector(),
		Notifier:           center,
		Presenter:          presenter.NewConsole(stderr),
		Logger:             log,
		Now:                func() time.Time { return time.Now().In(loc) },
		RecentTransactions: cfg.RecentTransactionsLimit,
		State:              state,
	})

	return nil
}
