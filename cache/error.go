package cache

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity indicates a cache was requested with capacity <= 0.
var ErrInvalidCapacity = errors.New("cache capacity must be positive")

// CapacityError reports the rejected capacity.
type CapacityError struct {
	Capacity int
}

// Error implements the error interface
func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: got %d", ErrInvalidCapacity, e.Capacity)
}

// Unwrap returns ErrInvalidCapacity
func (e *CapacityError) Unwrap() error {
	return ErrInvalidCapacity
}
