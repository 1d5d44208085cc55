package user

import "errors"

var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameTooLong    = errors.New("username must be 150 characters or fewer")
	ErrUsernameInvalid    = errors.New("username may contain only letters, digits and @/./+/-/_")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailInvalid       = errors.New("email address is not valid")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordAllNumeric = errors.New("password cannot be entirely numeric")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
