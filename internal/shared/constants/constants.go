package constants

import "time"

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// AccountListPageSize is the fixed page size of the linked-account listing.
	AccountListPageSize = 25

	// SearchDebounceInterval is the quiet period required before a search
	// input event recomputes the account listing.
	SearchDebounceInterval = 300 * time.Millisecond

	// RecentSignupWindow bounds the "recent signups" dashboard counter.
	RecentSignupWindow = 7 * 24 * time.Hour

	// ActiveUserWindow bounds the per-provider active-user counter.
	ActiveUserWindow = 30 * 24 * time.Hour

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyIsStaff   = "is_staff"
	ContextKeySuperuser = "is_superuser"
	ContextKeyRequestID = "request_id"

	// Form/query parameter carrying the post-login destination.
	NextParam = "next"

	// Database table names
	TableUsers              = "users"
	TableSocialAccountLinks = "social_account_links"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
