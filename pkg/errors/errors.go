// Package errors defines the error types returned by the StudyGo client.
//
// Callers distinguish failure classes with errors.As:
//
//	var reqErr *errors.RequestError
//	if stderrors.As(err, &reqErr) {
//		// network level failure, the upstream never answered
//	}
package errors

import (
	"fmt"
	"strings"
)

// ConfigError indicates a problem with the client configuration or call arguments.
type ConfigError struct {
	// Field contains the name of the configuration field that caused the error
	Field string
	// Message contains the detailed error message
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// AuthError indicates the credential exchange was rejected by the upstream.
// It is only produced in strict mode; lenient clients return whatever the
// error payload maps to.
type AuthError struct {
	// StatusCode is the HTTP status code (if from an HTTP response)
	StatusCode int
	// Message contains the detailed error message
	Message string
	// Body contains the raw response body (if available)
	Body string
	// Err contains the underlying error if available
	Err error
}

func (e *AuthError) Error() string {
	parts := []string{}

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status code %d", e.StatusCode))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Body != "" {
		parts = append(parts, fmt.Sprintf("body: %q", e.Body))
	}
	if e.Err != nil {
		parts = append(parts, fmt.Sprintf("err: %v", e.Err))
	}

	if len(parts) == 0 {
		return "auth error"
	}
	return "auth error: " + strings.Join(parts, ", ")
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// RequestError indicates a transport level failure: the request could not be
// built, sent, or its body could not be read.
type RequestError struct {
	// Operation is the name of the API operation that failed
	Operation string
	// URL is the URL that was being accessed
	URL string
	// Message contains the detailed error message
	Message string
	// Err contains the underlying error if available
	Err error
}

func (e *RequestError) Error() string {
	// Use Message if available, otherwise use Err.Error()
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	if e.Operation != "" && e.URL != "" {
		return fmt.Sprintf("request error during %s to %s: %s", e.Operation, e.URL, msg)
	} else if e.Operation != "" {
		return fmt.Sprintf("request error during %s: %s", e.Operation, msg)
	}
	return fmt.Sprintf("request error: %s", msg)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ParseError indicates the response body was not valid JSON.
type ParseError struct {
	// Operation is the name of the API operation where parsing failed
	Operation string
	// Message contains the detailed error message
	Message string
	// Err contains the underlying error if available
	Err error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	if e.Operation != "" {
		return fmt.Sprintf("parse error during %s: %s", e.Operation, msg)
	}
	return fmt.Sprintf("parse error: %s", msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError reports a response that decoded fine but lacks a field the
// operation requires. Only strict clients return it.
type ShapeError struct {
	// Operation is the name of the API operation
	Operation string
	// Path is the gjson path of the missing field, e.g. "results.0.locales"
	Path string
}

func (e *ShapeError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("unexpected response shape during %s: missing %s", e.Operation, e.Path)
	}
	return fmt.Sprintf("unexpected response shape: missing %s", e.Path)
}

// APIError represents a non-success HTTP status from the StudyGo API.
// Only strict clients return it.
type APIError struct {
	// StatusCode is the HTTP status code
	StatusCode int
	// Message is the error message from the upstream payload, if any
	Message string
	// Details contains the raw error payload
	Details string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}
