package domain

import "errors"

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidDateTime = errors.New("invalid startDateTime format")
)
