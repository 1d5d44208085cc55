// Package socialaccount models the link between a local user and an
// external identity-provider account.
package socialaccount

import (
	"errors"
	"time"
)

var (
	ErrProviderRequired = errors.New("provider is required")
	ErrUIDRequired      = errors.New("provider uid is required")
	ErrUserRequired     = errors.New("owning user is required")
)

// Link associates a local user with an external provider account.
// Uniqueness is enforced on (provider, uid).
type Link struct {
	id         uint
	userID     uint
	provider   string
	uid        string
	rawProfile []byte
	createdAt  time.Time
}

// NewLink validates and builds a new social account link.
func NewLink(userID uint, provider, uid string, rawProfile []byte) (*Link, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	if provider == "" {
		return nil, ErrProviderRequired
	}
	if uid == "" {
		return nil, ErrUIDRequired
	}
	return &Link{
		userID:     userID,
		provider:   provider,
		uid:        uid,
		rawProfile: rawProfile,
		createdAt:  time.Now().UTC(),
	}, nil
}

// ReconstructLink rebuilds a link from persisted state.
func ReconstructLink(id, userID uint, provider, uid string, rawProfile []byte, createdAt time.Time) *Link {
	return &Link{
		id:         id,
		userID:     userID,
		provider:   provider,
		uid:        uid,
		rawProfile: rawProfile,
		createdAt:  createdAt,
	}
}

func (l *Link) ID() uint             { return l.id }
func (l *Link) UserID() uint         { return l.userID }
func (l *Link) Provider() string     { return l.provider }
func (l *Link) UID() string          { return l.uid }
func (l *Link) RawProfile() []byte   { return l.rawProfile }
func (l *Link) CreatedAt() time.Time { return l.createdAt }

// SetID syncs the storage-generated id back onto the link.
func (l *Link) SetID(id uint) { l.id = id }
