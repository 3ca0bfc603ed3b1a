// ABOUTME: Error taxonomy for agent service calls: network failures and backend rejections
// ABOUTME: RejectionError matches ErrRejected via errors.Is; both carry the operation name

package api

import (
	"errors"
	"fmt"
)

// ErrRejected matches every RejectionError.
var ErrRejected = errors.New("backend rejected request")

// NetworkError is a transport-level failure: the request never produced a
// readable response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RejectionError is a response the client cannot accept: non-2xx status,
// ok:false, a missing ok flag, or a malformed payload.
type RejectionError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *RejectionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: rejected (HTTP %d): %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: rejected: %s", e.Op, e.Detail)
}

// Is reports ErrRejected as a match.
func (e *RejectionError) Is(target error) bool { return target == ErrRejected }

// IsNetwork reports whether err is (or wraps) a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
