package config

import "errors"

var (
	// ErrNoSource neither a file nor a url was given
	ErrNoSource = errors.New("Neither file nor URL is set.")
	// ErrConflictingSources a file and a url were given
	ErrConflictingSources = errors.New("file and URL are both set, use only one of them")
	// ErrUnknownFormat output format is neither json nor yaml
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrChecksNotAList checks file holds null or nothing instead of a list
	ErrChecksNotAList = errors.New("checks must be a list of selectors")
	// ErrInvalidTimeout negative timeout
	ErrInvalidTimeout = errors.New("invalid timeout: must not be negative")
)

// NotExistError is returned, when a file we depend on is missing
type NotExistError struct {
	Path string
}

func (e *NotExistError) Error() string {
	return e.Path + " does not exist"
}
