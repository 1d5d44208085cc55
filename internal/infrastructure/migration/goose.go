package migration

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// GooseDialect maps a database driver name to the goose dialect string.
func GooseDialect(driver string) string {
	if driver == "mysql" {
		return "mysql"
	}
	return "sqlite3"
}

func prepareGoose(db *gorm.DB, dialect string) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationScripts)
	if err := goose.SetDialect(dialect); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return sqlDB, nil
}

// Down rolls back the most recently applied migration.
func Down(db *gorm.DB, dialect string) error {
	sqlDB, err := prepareGoose(db, dialect)
	if err != nil {
		return err
	}
	if err := goose.Down(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}
	return nil
}

// Status prints the applied state of every known migration.
func Status(db *gorm.DB, dialect string) error {
	sqlDB, err := prepareGoose(db, dialect)
	if err != nil {
		return err
	}
	if err := goose.Status(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

// Version reports the current schema version.
func Version(db *gorm.DB, dialect string) (int64, error) {
	sqlDB, err := prepareGoose(db, dialect)
	if err != nil {
		return 0, err
	}
	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, nil
}
