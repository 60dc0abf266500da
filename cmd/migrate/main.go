// Package main implements the database migration utility for tg-forwarder.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/config"
	"github.com/popeskul/tg-forwarder/internal/infrastructure/migrate"
)

const (
	defaultMigrationsPath = "./migrations"
	defaultMigrateSteps   = 1
)

type options struct {
	migrationsPath string
	configPath     string
	steps          int
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("Migration failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the tg-forwarder database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.migrationsPath, "path", defaultMigrationsPath, "Path to migrations directory")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Read the database URL from this config file instead of DATABASE_URL")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(opts, logger, func(r *migrate.Runner) error {
				if err := r.Steps(opts.steps); err != nil {
					return err
				}
				return reportVersion(r, logger)
			})
		},
	}
	up.Flags().IntVar(&opts.steps, "steps", defaultMigrateSteps, "Number of migrations to apply")

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(opts, logger, func(r *migrate.Runner) error {
				if err := r.Steps(-opts.steps); err != nil {
					return err
				}
				return reportVersion(r, logger)
			})
		},
	}
	down.Flags().IntVar(&opts.steps, "steps", defaultMigrateSteps, "Number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(opts, logger, func(r *migrate.Runner) error {
				return reportVersion(r, logger)
			})
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

func withRunner(opts *options, logger *zap.Logger, fn func(*migrate.Runner) error) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if opts.configPath != "" {
		cfg, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		databaseURL = cfg.Database.GetURL()
	}
	if databaseURL == "" {
		return errors.New("DATABASE_URL environment variable or --config is required")
	}

	return fn(migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: opts.migrationsPath,
	}, logger))
}

func reportVersion(r *migrate.Runner, logger *zap.Logger) error {
	version, dirty, err := r.Version()
	if err != nil {
		return err
	}
	if dirty {
		logger.Warn("Database is in dirty state", zap.Uint("version", version))
		return nil
	}
	logger.Info("Current migration version", zap.Uint("version", version))
	return nil
}
