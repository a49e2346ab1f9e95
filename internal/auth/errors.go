package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAPIToken    = errors.New("invalid api token")
	ErrWeakPassword       = errors.New("password too short")
)
