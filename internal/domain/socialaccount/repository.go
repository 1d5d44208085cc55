package socialaccount

import (
	"context"
	"time"
)

// Row is a listing row joined with the owning user's identity fields.
type Row struct {
	ID       uint
	Username string
	Email    string
	Provider string
	UID      string
	LinkedAt time.Time
}

// ListFilter represents filtering, ordering and pagination for the
// account listing. OrderBy carries a leading "-" for descending and is
// empty for storage-default order.
type ListFilter struct {
	Provider string
	Search   string
	OrderBy  string
	Page     int
	PageSize int
}

// Repository defines the interface for social account link operations.
type Repository interface {
	// Create creates a new link
	Create(ctx context.Context, link *Link) error

	// GetByProviderAndUID retrieves a link by its unique (provider, uid) pair.
	// Returns nil, nil when absent.
	GetByProviderAndUID(ctx context.Context, provider, uid string) (*Link, error)

	// GetByUserID retrieves every link owned by a user
	GetByUserID(ctx context.Context, userID uint) ([]*Link, error)

	// Delete removes a link by id
	Delete(ctx context.Context, id uint) error

	// List retrieves a filtered, ordered, paginated page of listing rows
	List(ctx context.Context, filter ListFilter) ([]Row, int64, error)

	// Count returns the total number of links
	Count(ctx context.Context) (int64, error)

	// CountByProvider counts links for one provider
	CountByProvider(ctx context.Context, provider string) (int64, error)

	// LastLinkedAt returns the most recent link time for a provider,
	// or nil when the provider has no links
	LastLinkedAt(ctx context.Context, provider string) (*time.Time, error)

	// CountActiveUsersSince counts distinct users linked to the provider
	// whose last login falls at or after the given time
	CountActiveUsersSince(ctx context.Context, provider string, since time.Time) (int64, error)

	// CountDistinctUsers counts distinct users holding at least one link
	CountDistinctUsers(ctx context.Context) (int64, error)

	// DistinctProviders lists the providers present in the link table,
	// ordered by provider id
	DistinctProviders(ctx context.Context) ([]string, error)
}
