package gerr

import "errors"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrUnknownAccount   = errors.New("unknown account")
	ErrImportInProgress = errors.New("import already in progress")
	ErrInvalidRequest   = errors.New("invalid request")
)
