package api

import (
	"errors"
	"fmt"
)

// ErrChainNotInCut is returned when the consensus cut lacks a configured chain.
var ErrChainNotInCut = errors.New("chain is not part of the cut")

// StatusError is a non-2xx response. It is retried until the policy gives up.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// DecodeError is a 2xx response whose body does not have the expected shape.
// It is never retried.
type DecodeError struct {
	Operation string
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Operation, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
