package user

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

// User is the identity-store aggregate. Password rules and username rules
// live here; callers delegate credential validation to this entity.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	isStaff      bool
	isSuperuser  bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// PasswordHasher abstracts the hashing scheme used for stored credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// NewUser validates and builds a new user aggregate.
func NewUser(username, email string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		username:  username,
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a user from persisted state. No validation runs.
func Reconstruct(
	id uint,
	username, email, passwordHash string,
	isStaff, isSuperuser bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		isSuperuser:  isSuperuser,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uint                { return u.id }
func (u *User) Username() string        { return u.username }
func (u *User) Email() string           { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) IsStaff() bool           { return u.isStaff }
func (u *User) IsSuperuser() bool       { return u.isSuperuser }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

// SetID syncs the storage-generated id back onto the aggregate.
func (u *User) SetID(id uint) { u.id = id }

// SetPassword validates password strength and stores the hash.
func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

// VerifyPassword checks the given password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return ErrInvalidCredentials
	}
	if err := hasher.Compare(u.passwordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// RecordLogin stamps the last-login time.
func (u *User) RecordLogin(at time.Time) {
	t := at.UTC()
	u.lastLoginAt = &t
	u.updatedAt = t
}

// GrantStaff marks the user as staff.
func (u *User) GrantStaff() {
	u.isStaff = true
	u.updatedAt = time.Now().UTC()
}

// GrantSuperuser marks the user as superuser (implies staff).
func (u *User) GrantSuperuser() {
	u.isStaff = true
	u.isSuperuser = true
	u.updatedAt = time.Now().UTC()
}

func validateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if len(username) > 150 {
		return ErrUsernameTooLong
	}
	if !usernameRe.MatchString(username) {
		return ErrUsernameInvalid
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return ErrEmailInvalid
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return ErrPasswordAllNumeric
	}
	return nil
}
