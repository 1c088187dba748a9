// Package pperror defines the error format rendered by the pinpost server.
// An error carries an HTTP status code and a detail payload which is either a
// plain message or a field→message map for accumulated validation errors.
package pperror

import (
	"net/http"
	"sort"
	"strings"
)

// Fields maps a field name to its validation error message.
type Fields map[string]string

// A PPError represents an error that can be rendered by the pinpost server.
type PPError struct {
	HTTPCode int `json:"-"`
	Detail   any `json:"detail"`
}

// StatusCode returns the HTTP status code of err.
func StatusCode(err error) int {
	if pperr, ok := err.(*PPError); ok && pperr.HTTPCode != 0 {
		return pperr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new PPError with the given code and message.
func New(code int, message string) *PPError {
	return &PPError{HTTPCode: code, Detail: message}
}

// NotFound returns a new 404 PPError with the given message.
func NotFound(message string) *PPError {
	return New(http.StatusNotFound, message)
}

// Unauthenticated returns a new 401 PPError with the given message.
func Unauthenticated(message string) *PPError {
	return New(http.StatusUnauthorized, message)
}

// Validation returns a new 400 PPError carrying the given field errors.
func Validation(fields Fields) *PPError {
	return &PPError{HTTPCode: http.StatusBadRequest, Detail: fields}
}

// Error implements error interface.
func (e *PPError) Error() string {
	switch detail := e.Detail.(type) {
	case string:
		return detail
	case Fields:
		keys := make([]string, 0, len(detail))
		for k := range detail {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "invalid fields: " + strings.Join(keys, ", ")
	default:
		return "unknown error"
	}
}
