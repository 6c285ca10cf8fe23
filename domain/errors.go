package domain

import "errors"

// Sentinel errors shared by the calculator, aggregator and services.
// Callers wrap them with context and match with errors.Is.
var (
	// ErrInvalidInput is returned for non-positive stakes, zero odds,
	// unknown results and similar caller mistakes
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration is returned when a stored setting such as the unit size is unusable
	ErrConfiguration = errors.New("invalid configuration")

	ErrWagerNotFound  = errors.New("wager not found")
	ErrAlreadySettled = errors.New("wager already settled")
	ErrNotWagerOwner  = errors.New("wager belongs to another user")
	ErrUserNotFound   = errors.New("user not found")
)
