package staff

import "errors"

var (
	ErrMissingParameter = errors.New("parameter missing")
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrAdminProtected   = errors.New("default administrator cannot be deleted")

	// Source reader classifications. Each aborts the whole file import
	// before or at the failing read, with no accounts written for it.
	ErrSourceNotFound    = errors.New("import file not found")
	ErrSourceUnsupported = errors.New("unsupported import file format")
	ErrSourceIO          = errors.New("import file read failed")
)
