package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrRegistrationClosed  = errors.New("registration is closed, ask an admin for an account")
	ErrGoogleEmailNotFound = errors.New("no account matches this google email")
)
