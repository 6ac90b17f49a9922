package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NotFound reports that a referenced resource does not exist.
func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// Authorization reports that the acting user does not own the resource.
func Authorization(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

// Authentication reports a credential mismatch.
func Authentication(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

// Invariant reports a violated business rule, e.g. a duplicate username.
func Invariant(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func hasStatus(err error, code int) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e) && e.StatusCode == code
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsAuthorization(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func IsAuthentication(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func IsInvariant(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}
