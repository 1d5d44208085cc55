package user

import (
	"context"
	"time"
)

// Repository defines the interface for user data operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// ExistsByUsername checks if a user exists by username
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks if a user exists by email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)

	// CountCreatedAfter counts users created at or after the given time
	CountCreatedAfter(ctx context.Context, t time.Time) (int64, error)

	// CountStaff counts staff users
	CountStaff(ctx context.Context) (int64, error)

	// CountSuperusers counts superusers
	CountSuperusers(ctx context.Context) (int64, error)
}
