package models

import (
	"time"

	"gorm.io/datatypes"

	"authpanel/internal/shared/constants"
)

// SocialAccountLinkModel represents the database persistence model for
// provider account links. Uniqueness is enforced on (provider, uid).
type SocialAccountLinkModel struct {
	ID         uint           `gorm:"primarykey"`
	UserID     uint           `gorm:"not null;index:idx_social_user_id"`
	Provider   string         `gorm:"not null;size:50;uniqueIndex:idx_provider_uid"`
	UID        string         `gorm:"not null;size:255;uniqueIndex:idx_provider_uid;column:uid"`
	RawProfile datatypes.JSON `gorm:"column:raw_profile"`
	CreatedAt  time.Time      `gorm:"index:idx_social_created_at"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SocialAccountLinkModel) TableName() string {
	return constants.TableSocialAccountLinks
}
