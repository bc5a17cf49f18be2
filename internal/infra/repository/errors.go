package repository

import "errors"

var (
	ErrInvalidProfileData = errors.New("invalid profile data")
	ErrInvalidIntakeData  = errors.New("invalid intake data")
)
