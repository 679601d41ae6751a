package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers network failures and deadline expiry: the
	// backend could not be reached at all. The stored credential is not
	// implicated.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers definitive authentication/authorization
	// rejections (401/403).
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a non-2xx response that is neither an auth rejection nor a
// transport failure. Message carries the backend's {message} body verbatim;
// it is empty when the body had none.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return e.Message
}
