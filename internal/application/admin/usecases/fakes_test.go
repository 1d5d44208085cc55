package usecases

import (
	"context"
	"errors"
	"time"

	"authpanel/internal/domain/socialaccount"
	"authpanel/internal/domain/user"
)

// fakeLinkRepo is an in-memory socialaccount.Repository with per-provider
// failure injection for the stat queries.
type fakeLinkRepo struct {
	rows          []socialaccount.Row
	counts        map[string]int64
	lastLinked    map[string]time.Time
	activeUsers   map[string]int64
	distinctUsers int64
	providers     []string

	failProvider string
	listErr      error
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{
		counts:      map[string]int64{},
		lastLinked:  map[string]time.Time{},
		activeUsers: map[string]int64{},
	}
}

func (r *fakeLinkRepo) Create(ctx context.Context, link *socialaccount.Link) error { return nil }

func (r *fakeLinkRepo) GetByProviderAndUID(ctx context.Context, provider, uid string) (*socialaccount.Link, error) {
	return nil, nil
}

func (r *fakeLinkRepo) GetByUserID(ctx context.Context, userID uint) ([]*socialaccount.Link, error) {
	return nil, nil
}

func (r *fakeLinkRepo) Delete(ctx context.Context, id uint) error { return nil }

func (r *fakeLinkRepo) List(ctx context.Context, filter socialaccount.ListFilter) ([]socialaccount.Row, int64, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	total := int64(len(r.rows))
	start := (filter.Page - 1) * filter.PageSize
	if start >= len(r.rows) {
		return nil, total, nil
	}
	end := start + filter.PageSize
	if end > len(r.rows) {
		end = len(r.rows)
	}
	return r.rows[start:end], total, nil
}

func (r *fakeLinkRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *fakeLinkRepo) CountByProvider(ctx context.Context, provider string) (int64, error) {
	if provider == r.failProvider {
		return 0, errors.New("db down")
	}
	return r.counts[provider], nil
}

func (r *fakeLinkRepo) LastLinkedAt(ctx context.Context, provider string) (*time.Time, error) {
	if provider == r.failProvider {
		return nil, errors.New("db down")
	}
	if t, ok := r.lastLinked[provider]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *fakeLinkRepo) CountActiveUsersSince(ctx context.Context, provider string, since time.Time) (int64, error) {
	if provider == r.failProvider {
		return 0, errors.New("db down")
	}
	return r.activeUsers[provider], nil
}

func (r *fakeLinkRepo) CountDistinctUsers(ctx context.Context) (int64, error) {
	return r.distinctUsers, nil
}

func (r *fakeLinkRepo) DistinctProviders(ctx context.Context) ([]string, error) {
	return r.providers, nil
}

// fakeUserCounts implements the counting slice of user.Repository.
type fakeUserCounts struct {
	user.Repository

	total      int64
	recent     int64
	staff      int64
	superusers int64
	err        error
}

func (r *fakeUserCounts) Count(ctx context.Context) (int64, error) { return r.total, r.err }

func (r *fakeUserCounts) CountCreatedAfter(ctx context.Context, t time.Time) (int64, error) {
	return r.recent, r.err
}

func (r *fakeUserCounts) CountStaff(ctx context.Context) (int64, error) { return r.staff, r.err }

func (r *fakeUserCounts) CountSuperusers(ctx context.Context) (int64, error) {
	return r.superusers, r.err
}
