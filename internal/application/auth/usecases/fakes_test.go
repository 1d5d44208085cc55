package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"authpanel/internal/domain/user"
)

// fakeUserRepo is an in-memory user.Repository for usecase tests.
type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*user.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.users {
		if existing.Username() == u.Username() || existing.Email() == u.Email() {
			return errors.New("UNIQUE constraint failed: users.username")
		}
	}
	u.SetID(r.nextID)
	r.users[r.nextID] = u
	r.nextID++
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[u.ID()]; !ok {
		return fmt.Errorf("user %d not found", u.ID())
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, err := r.GetByUsername(ctx, username)
	return u != nil, err
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	return u != nil, err
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), r.err
}

func (r *fakeUserRepo) CountCreatedAfter(ctx context.Context, t time.Time) (int64, error) {
	var n int64
	for _, u := range r.users {
		if !u.CreatedAt().Before(t) {
			n++
		}
	}
	return n, r.err
}

func (r *fakeUserRepo) CountStaff(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.IsStaff() {
			n++
		}
	}
	return n, r.err
}

func (r *fakeUserRepo) CountSuperusers(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.IsSuperuser() {
			n++
		}
	}
	return n, r.err
}

// fakeHasher hashes by prefixing, good enough for round trips in tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	err error
}

func (f *fakeIssuer) Generate(userID uint, username string, isStaff, isSuperuser bool) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("token-%d-%s", userID, username), nil
}

func (f *fakeIssuer) MaxAge() int { return 3600 }

type fakeEmailService struct {
	welcomes []string
	err      error
}

func (f *fakeEmailService) SendWelcomeEmail(to, username string) error {
	f.welcomes = append(f.welcomes, to)
	return f.err
}

func (f *fakeEmailService) SendLoginAlertEmail(to, username string) error { return f.err }
