package gigs

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("gig does not belong to this seller")
)
