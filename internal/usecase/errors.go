package usecase

import "errors"

var (
	ErrInvalidSlug        = errors.New("invalid profile slug")
	ErrInvalidCounselorID = errors.New("invalid counselor id")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrServiceUnavailable = errors.New("service unavailable")
)
