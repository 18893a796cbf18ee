package controller

import "fmt"

// TransportError wraps a failure reported by the Transport. The last-color
// state is never updated when a send ends in a TransportError.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport send failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
