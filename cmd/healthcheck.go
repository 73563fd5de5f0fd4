package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"social-network/core/config"
	"social-network/core/health"
	"social-network/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchHealth bool

// errUnhealthy is returned by the watch mode once the target turns unhealthy.
var errUnhealthy = errors.New("target is unhealthy")

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Probe the running server",
	Long: `Sends one GET to probe.url and exits 0 when the server answers with a status below 400.
This is the container HEALTHCHECK command. With --watch it keeps probing on the configured
schedule and exits non-zero once the target is unhealthy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if !watchHealth {
			return health.Probe(cmd.Context(), nil, cfg.Probe.URL, cfg.Probe.Timeout)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watch(ctx, cfg.Probe, logg)
	},
}

// watch runs the monitor until ctx ends or the target becomes unhealthy.
func watch(ctx context.Context, cfg health.Config, logg *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	m := health.NewMonitor(cfg, nil, logg)
	m.OnChange = func(from, to health.Status) {
		if to == health.StatusUnhealthy {
			cancel(errUnhealthy)
		}
	}

	logg.Info("Watching health", zap.String("url", cfg.URL), zap.Duration("interval", cfg.Interval))
	err := m.Run(ctx)
	if errors.Is(context.Cause(ctx), errUnhealthy) {
		return fmt.Errorf("%w after %d consecutive failures", errUnhealthy, m.Failures())
	}
	if ctx.Err() != nil {
		// Stopped by a signal or the caller.
		return nil
	}
	return err
}

func init() {
	healthcheckCmd.Flags().BoolVar(&watchHealth, "watch", false, "Keep probing and exit once the target is unhealthy")
	RootCmd.AddCommand(healthcheckCmd)
}
