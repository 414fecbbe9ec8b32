package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTooManyLoginAttempts    = errors.New("too many login attempts")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionNotActive        = errors.New("session is not active")

	// ErrSessionSuperseded is the cancellation cause of calls running under
	// a session replaced by a newer login.
	ErrSessionSuperseded = errors.New("logged in from another location")

	ErrInvalidAdminUser = errors.New("invalid admin user configuration")

	ErrEngineStopped    = errors.New("engine is stopped")
	ErrInvalidUID       = errors.New("invalid user id")
	ErrCommandQueueFull = errors.New("command queue is full")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
