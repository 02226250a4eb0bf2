// Package server provides the HTTP API for the booster tools.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUpstream indicates a dependency (GitHub, Gemini) failed.
type ErrUpstream struct {
	Service string
	Err     error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *ErrUpstream) Unwrap() error { return e.Err }

// ErrBrowserUnavailable indicates no headless browser is installed, so
// PDF printing cannot run.
type ErrBrowserUnavailable struct{}

func (e *ErrBrowserUnavailable) Error() string {
	return "no headless browser available for PDF export"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUpstream:
		return http.StatusBadGateway
	case *ErrBrowserUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
