package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable wraps transport-level failures: connection refused, DNS,
// timeouts. Callers match it with errors.Is and surface a generic message.
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx response from the identity service. Msg is the
// user-facing message from the response body's `msg` field; it is empty
// when the body carried none or could not be decoded.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
	return fmt.Sprintf("server error (status %d): %s", e.Status, e.Msg)
}
