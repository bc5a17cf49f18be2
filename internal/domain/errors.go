package domain

import "errors"

var (
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM in 24-hour format")
	ErrProfileNotFound  = errors.New("profile not found")
)
