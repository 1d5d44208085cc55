// Package migration manages the database schema for the panel.
package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"authpanel/internal/infrastructure/persistence/models"
	"authpanel/internal/shared/constants"
	"authpanel/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a migration manager. Development environments use
// GORM AutoMigrate; everything else runs the embedded goose scripts.
func NewManager(environment, dialect string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvDevelopment, "":
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGooseStrategy(dialect)
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// NewManagerWithStrategy creates a migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// AllModels returns every persistence model the schema covers.
func AllModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SocialAccountLinkModel{},
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = AllModels()
	}

	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(modelList))

	if err := m.strategy.Migrate(db, modelList...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())

	return nil
}
