package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"social-network/core/config"
	"social-network/core/database"
	"social-network/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Social Network API
// @version 1.0.0
// @description Users, posts, comments and tags with HATEOAS links, pagination and localized dates.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Long:  `Connects to the database, initializes all enabled features and serves HTTP until SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := cfg.Server.Validate(); err != nil {
			return err
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 3. Connect to Database
		db, err := database.Open(ctx, cfg.Database, logg)
		if err != nil {
			return err
		}
		defer db.Close(context.Background())
		logg.Info("Connected to database", zap.String("driver", db.Driver))

		// 4. Assemble the app and its features
		app, _, err := buildApp(ctx, cfg, logg, db)
		if err != nil {
			return err
		}

		// 5. Bind before serving so a busy port fails the command
		ln, err := net.Listen("tcp", cfg.Server.Address())
		if err != nil {
			return fmt.Errorf("failed to bind %s: %w", cfg.Server.Address(), err)
		}

		errs := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			errs <- app.Listener(ln)
		}()

		// 6. Graceful Shutdown
		select {
		case err := <-errs:
			return fmt.Errorf("server stopped: %w", err)
		case <-ctx.Done():
		}
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
