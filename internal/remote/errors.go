package remote

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the backend has no such resource, either as
// a 404 or as a {"success": false} body.
var ErrNotFound = errors.New("not found")

// TransportError covers every other failure: network errors, unexpected
// status codes and payloads that fail to parse or validate.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
