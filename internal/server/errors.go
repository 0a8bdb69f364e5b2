package server

import (
	"encoding/json"
	"net/http"
)

// ErrorType categorizes API errors returned by this service.
type ErrorType string

const (
	// ErrorTypeInvalidRequest indicates a malformed or invalid request.
	ErrorTypeInvalidRequest ErrorType = "invalid_request"

	// ErrorTypeContextLength indicates the prompt exceeds the token budget.
	ErrorTypeContextLength ErrorType = "context_length"

	// ErrorTypeConfiguration indicates a deployment misconfiguration, such as
	// a missing audit secret. Non-retryable.
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeServer indicates an internal server error.
	ErrorTypeServer ErrorType = "server"
)

// APIError is the JSON error shape returned to clients.
type APIError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`

	// StatusCode is the HTTP status to respond with.
	StatusCode int `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return string(e.Type) + ": " + e.Message
}

// HTTPStatusCode returns the HTTP status code for this error.
func (e *APIError) HTTPStatusCode() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	switch e.Type {
	case ErrorTypeInvalidRequest, ErrorTypeContextLength:
		return http.StatusBadRequest
	case ErrorTypeConfiguration, ErrorTypeServer:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes an APIError as a JSON response body.
func writeError(w http.ResponseWriter, apiErr *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.HTTPStatusCode())
	json.NewEncoder(w).Encode(map[string]*APIError{"error": apiErr})
}
