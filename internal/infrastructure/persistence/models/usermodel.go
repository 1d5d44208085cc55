package models

import (
	"time"

	"authpanel/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex;not null;size:150"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	IsStaff      bool   `gorm:"default:false;index:idx_is_staff"`
	IsSuperuser  bool   `gorm:"default:false"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"index:idx_users_created_at"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
