package repository

import "errors"

// Sentinel errors the handler layer maps to HTTP statuses.
var (
	ErrNotFound   = errors.New("document not found")
	ErrInvalidID  = errors.New("invalid document id")
	ErrOutOfStock = errors.New("quantity already zero")
)
