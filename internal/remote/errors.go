package remote

import "fmt"

// RemoteError is a non-200 response from a remote endpoint. The body is kept
// verbatim for operator display.
type RemoteError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// ConnectError is a transport-level failure: connection refused, timeout,
// DNS failure. It wraps the underlying cause.
type ConnectError struct {
	Operation string
	Err       error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// PollExhaustedError ends a poll loop after too many consecutive recoverable
// failures. It wraps the last failure observed.
type PollExhaustedError struct {
	Attempts int
	Err      error
}

func (e *PollExhaustedError) Error() string {
	return fmt.Sprintf("polling gave up after %d consecutive failures: %v", e.Attempts, e.Err)
}

func (e *PollExhaustedError) Unwrap() error {
	return e.Err
}
