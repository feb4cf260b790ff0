package domain

import "errors"

// Auth errors
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenRevoked   = errors.New("token revoked")
	ErrTokenReused    = errors.New("refresh token already consumed")
)

// Referral errors
var (
	ErrUnknownReferralCode = errors.New("unknown referral code")
	ErrSelfReferral        = errors.New("cannot use own referral code")
)

// Content errors
var (
	ErrMissingDefaultTranslation = errors.New("french translation is required")
	ErrUnknownSection            = errors.New("unknown landing page section")
)

// Common errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidPhone       = errors.New("invalid phone number format")
)
