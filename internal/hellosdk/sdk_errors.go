package hellosdk

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEndpoint = errors.New("unknown probe endpoint")
	ErrUnexpectedBody  = errors.New("unexpected probe status")
)

// StatusError is returned when the server answers with anything but 200.
type StatusError struct {
	Path       string
	StatusCode int
	Code       string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("GET %s: status %d (%s)", e.Path, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("GET %s: status %d", e.Path, e.StatusCode)
}
