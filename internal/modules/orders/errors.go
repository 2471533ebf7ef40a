package orders

import "errors"

var (
	// ErrNotFound covers the "no error, no row" single-order fetch. Callers
	// depend on the error channel to show a not-found state.
	ErrNotFound = errors.New("order not found")

	ErrValidation = errors.New("validation failed")
)
