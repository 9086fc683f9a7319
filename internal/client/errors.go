package client

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when the server has no dataset to show or export.
var ErrNoData = errors.New("no data available")

// APIError is a non-2xx answer of the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status=%d", e.StatusCode)
}

// UnreachableError indicates the API could not be reached at all.
type UnreachableError struct {
	Host string
	Err  error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("server unreachable at %s: %v", e.Host, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}
