package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrEmailTaken       = errors.New("email already registered")
	ErrMissingFields    = errors.New("missing fields")
	ErrPasswordTooShort = errors.New("password too short")
)
