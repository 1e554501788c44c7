package errors

import "errors"

// Library-wide error messages are here.
var (
	ErrProjectDirEmpty        = errors.New("project directory value is empty")
	ErrProjectDirNotFound     = errors.New("project directory does not exist")
	ErrCannotInitializeChecks = errors.New("unable to initialize checks")
	ErrValidationFailed       = errors.New("validation failed")
)
