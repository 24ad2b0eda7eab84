package usecase

import "errors"

var (
	ErrEmptyURL           = errors.New("empty URL")
	ErrInvalidURL         = errors.New("invalid URL")
	ErrInvalidCode        = errors.New("custom code must be 1-20 letters, digits, hyphens or underscores")
	ErrCodeTaken          = errors.New("custom code is already taken")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLinkNotFound       = errors.New("short link not found")
	ErrNotOwner           = errors.New("you do not own this link")
	ErrServiceUnavailable = errors.New("service unavailable")
)
