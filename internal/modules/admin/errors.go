package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrNotSignedIn        = errors.New("no admin session")
	ErrRoleForbidden      = errors.New("admin role may not perform this action")
)
