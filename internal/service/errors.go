package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Keeping a single error kind avoids leaking which of the two
	// failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
