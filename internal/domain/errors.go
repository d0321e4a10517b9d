package domain

import "fmt"

// UnavailableError wraps an upstream inventory provider failure. The whole
// operation aborts; there is no partial result when the provider is down.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: inventory provider unavailable: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
