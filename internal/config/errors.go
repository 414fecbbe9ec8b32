package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid console adapter settings
	// (for example, missing gateway address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAddUserMode indicates an AddUser mode other than sync or async.
	ErrInvalidAddUserMode = errors.New("invalid add user mode, want sync or async")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings or a broken
	// login rate limit.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrNoAdminUsers indicates that nobody could ever log in.
	ErrNoAdminUsers = errors.New("no admin users configured")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
