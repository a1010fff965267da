package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoSession is returned before any I/O when no bearer token is available.
var ErrNoSession = errors.New("no active session, run `foodadmin login` first")

// TransportError means the request never produced an HTTP response: the
// connection failed, timed out or was cancelled.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a response with a non-2xx status or success set to false.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %d %s: %v", e.Method, e.Path, e.Status, msg, e.Err)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, msg)
}

func (e *APIError) Unwrap() error { return e.Err }

// Message picks the text shown to the user for err: the API's own message
// when it sent one, the session hint for a missing session, else fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrNoSession) {
		return ErrNoSession.Error()
	}
	return fallback
}

// IsUnauthorized reports whether the server rejected the bearer token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
