package services

import "errors"

// Recoverable service errors, surfaced to the caller as user-facing
// failures. Persistence errors propagate wrapped and opaque.
var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrProductNotFound = errors.New("product not found")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrCartNotFound    = errors.New("cart not found")
)
