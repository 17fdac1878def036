package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. Callers branch on these with errors.Is rather than
// inspecting ad hoc shapes:
//
//   - ErrMissingID: an individual wire record with no resolvable identifier.
//     Dropped from loads, never fatal.
//   - ErrNetwork: the request never produced a service response (DNS, refused
//     connection, timeout).
//   - ErrUnauthorized: a 401 from the service; triggers global session
//     eviction and still propagates to the immediate caller.
var (
	ErrMissingID    = errors.New("wire record has no resolvable id")
	ErrNetwork      = errors.New("network failure")
	ErrUnauthorized = errors.New("unauthorized")
)

// RequestError describes a failed service call. Status is zero when the
// request never reached the service.
type RequestError struct {
	Method string
	URL    string
	Status int
	Body   string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.Status)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
