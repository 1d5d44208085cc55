// Package migrate implements the database migration CLI commands.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"authpanel/internal/infrastructure/config"
	"authpanel/internal/infrastructure/database"
	"authpanel/internal/infrastructure/migration"
	"authpanel/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run, rollback and inspect the database schema migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			strategy := migration.NewGooseStrategy(migration.GooseDialect(cfg.Database.Driver))
			return migration.NewManagerWithStrategy(strategy).Migrate(database.Get())
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Rollback the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			return migration.Down(database.Get(), migration.GooseDialect(cfg.Database.Driver))
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			dialect := migration.GooseDialect(cfg.Database.Driver)
			if err := migration.Status(database.Get(), dialect); err != nil {
				return err
			}

			version, err := migration.Version(database.Get(), dialect)
			if err != nil {
				return err
			}
			fmt.Printf("current version: %d\n", version)
			return nil
		},
	}
}

// setup loads configuration, initializes logging and opens the database.
func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, nil
}
