package api

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericErrorMessage is shown when a failure carries no displayable
// message of its own.
const GenericErrorMessage = "Something went wrong. Please try again."

// StatusError is a non-2xx response from the backend. Message carries
// the backend's response_message when the body had one; network-level
// failures are plain wrapped errors, never a StatusError.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// AppError is an application-level failure that rode inside a 2xx
// response body (status_type "fail"). Its message is always displayable.
type AppError struct {
	Message string
}

func (e *AppError) Error() string { return e.Message }

// IsUnauthorized reports whether the error is an authorization failure
// (HTTP 401). Other 4xx/5xx statuses are not authorization failures.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized
}

// DisplayMessage returns the user-displayable message for an error:
// the application fail message when present, the backend's message for
// status failures, and a generic fallback for everything else.
func DisplayMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return GenericErrorMessage
}
