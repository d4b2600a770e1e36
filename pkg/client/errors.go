package client

import "fmt"

// UnsupportedMethodError indicates a method other than GET or POST was passed
// to Do. This is a programming error and is never retried.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("client: unsupported HTTP method %q", e.Method)
}

// NetworkError indicates a request failed on every attempt. Cause holds the
// last attempt's error; use errors.As to reach an underlying *APIError.
type NetworkError struct {
	Attempts int
	Cause    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("client: request failed after %d attempts: %v", e.Attempts, e.Cause)
}

// Unwrap returns the last attempt's error for errors.Is/errors.As.
func (e *NetworkError) Unwrap() error { return e.Cause }

// APIError is a non-success HTTP status from the worker API. It surfaces as
// the Cause of a NetworkError once retries are exhausted.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: API error (status %d): %s", e.StatusCode, e.Message)
}

// NotFoundError indicates no prompt with the requested name exists after a
// full, successful fetch.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("client: no prompt named %q", e.Name)
}

var (
	_ error = (*UnsupportedMethodError)(nil)
	_ error = (*NetworkError)(nil)
	_ error = (*APIError)(nil)
	_ error = (*NotFoundError)(nil)
)
