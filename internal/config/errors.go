package config

import "errors"

// Sentinel errors returned by config validation. Callers can match against
// them with [errors.Is].
var (
	// ErrUnknownDBEngine is returned when Storage.DB.Engine is neither
	// "postgres" nor "sqlite".
	ErrUnknownDBEngine = errors.New("unknown database engine")

	// ErrInvalidStorageConfigs is returned when the database DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidServerConfigs is returned when the HTTP listen address is
	// missing.
	ErrInvalidServerConfigs = errors.New("invalid server configs")

	// ErrInvalidAppConfigs is returned when token issuer or duration are not
	// usable.
	ErrInvalidAppConfigs = errors.New("invalid app configs")
)
