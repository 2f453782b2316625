package domain

import "errors"

// Sentinel errors used throughout the application.
var (
	// ErrDatabaseURLNotSet is reported by the probe when no DSN is configured.
	// Its text is the detail string returned to callers.
	ErrDatabaseURLNotSet = errors.New("DATABASE_URL is not set")
)
