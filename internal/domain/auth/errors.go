package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrUserExists         = errors.New("user already exists")
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
)
