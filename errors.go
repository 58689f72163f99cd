package htmlcheck

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMode      = errors.New("unknown mode")
	ErrInvalidSelector  = errors.New("invalid selector")
	ErrRobotsDisallowed = errors.New("robots.txt does not allow access")
)

// FetchError a url could not be fetched, either the request failed or the
// server answered with a non 2xx status
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return "could not fetch " + e.URL + ": " + e.Err.Error()
	}
	return fmt.Sprint("unexpected response code: ", e.StatusCode, ", status: ", e.Status, ", url: ", e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
