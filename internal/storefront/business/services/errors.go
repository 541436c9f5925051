package services

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a local precondition failure. Operations returning
// it have not touched the network.
var ErrInvalidArgument = errors.New("invalid argument")

// NetworkError wraps a transport-level failure: the request never produced a
// response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteRejectionError means the backend answered with a status the operation
// does not accept. It is terminal for the attempt; nothing retries it.
type RemoteRejectionError struct {
	StatusCode int
	Status     string
}

func (e *RemoteRejectionError) Error() string {
	return fmt.Sprintf("remote rejected request: %s", e.Status)
}
