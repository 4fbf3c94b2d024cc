package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"food-delivery-api/internal/app"
	"food-delivery-api/internal/config"
	"food-delivery-api/internal/database"
	"food-delivery-api/internal/logger"
)

// NewRootCmd creates the food-delivery-api command. Running it without a
// subcommand starts the HTTP server.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "food-delivery-api",
		Short:         "Food delivery REST backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		RunE:  runServe,
	}
}

func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE:  runMigrate,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		return err
	}

	if err := application.Run(ctx); err != nil {
		slog.Error("application run failed", "error", err)
		return err
	}
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		slog.Error("migration failed", "error", err)
		return err
	}

	slog.Info("migrations completed")
	return nil
}

// setup loads configuration and installs the process-wide logger.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.SetDefault(logger.New(os.Stdout, slog.LevelInfo))
		slog.Error("failed to load config", "error", err)
		return nil, fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(logger.New(os.Stdout, cfg.LogLevel))
	return cfg, nil
}
