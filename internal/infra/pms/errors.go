package pms

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies remote failures so the sync layer can report
// credential problems distinctly from transient ones.
type ErrorKind string

const (
	KindAuth        ErrorKind = "AUTH"
	KindPermission  ErrorKind = "PERMISSION"
	KindRateLimited ErrorKind = "RATE_LIMITED"
	KindRemote      ErrorKind = "REMOTE"
)

type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pms api error (%s, status %d): %s", e.Kind, e.StatusCode, e.Message)
}

func newAPIError(statusCode int, message string) *APIError {
	kind := KindRemote
	switch statusCode {
	case http.StatusUnauthorized:
		kind = KindAuth
		message = "invalid or expired API credentials"
	case http.StatusForbidden:
		kind = KindPermission
		message = "API key lacks permission for this operation"
	case http.StatusTooManyRequests:
		kind = KindRateLimited
		message = "rate limit exceeded, retry later"
	}
	return &APIError{Kind: kind, StatusCode: statusCode, Message: message}
}

func IsErrorKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}
