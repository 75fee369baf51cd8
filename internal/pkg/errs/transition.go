package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for route transition and session failures.
// These map one-to-one onto the outcomes the confirmation workflow and the
// HTTP layer need to distinguish.
var (
	ErrAuthenticationRequired  = errors.New("authentication required")
	ErrTimeout                 = errors.New("operation timed out")
	ErrTransitionRejected      = errors.New("transition rejected")
	ErrInvalidConfirmationCode = errors.New("invalid confirmation code")
	ErrNetworkUnavailable      = errors.New("network unavailable")
)

// AuthenticationRequiredError indicates that an operation needs an active
// courier session and none was present.
type AuthenticationRequiredError struct {
	Operation string
	Cause     error
}

// NewAuthenticationRequiredError creates an AuthenticationRequiredError for the named operation.
func NewAuthenticationRequiredError(operation string) AuthenticationRequiredError {
	return AuthenticationRequiredError{Operation: operation}
}

// NewAuthenticationRequiredErrorWithCause creates an AuthenticationRequiredError wrapping a cause.
func NewAuthenticationRequiredErrorWithCause(operation string, cause error) AuthenticationRequiredError {
	return AuthenticationRequiredError{Operation: operation, Cause: cause}
}

func (e AuthenticationRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrAuthenticationRequired, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrAuthenticationRequired, e.Operation))
}

func (e AuthenticationRequiredError) Unwrap() error {
	return ErrAuthenticationRequired
}

// TimeoutError indicates that an outbound call exceeded its bound.
// The remote state is uncertain and must not be assumed changed.
type TimeoutError struct {
	Operation string
	Cause     error
}

// NewTimeoutError creates a TimeoutError for the named operation.
func NewTimeoutError(operation string) TimeoutError {
	return TimeoutError{Operation: operation}
}

// NewTimeoutErrorWithCause creates a TimeoutError wrapping an underlying cause.
func NewTimeoutErrorWithCause(operation string, cause error) TimeoutError {
	return TimeoutError{Operation: operation, Cause: cause}
}

func (e TimeoutError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrTimeout, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrTimeout, e.Operation))
}

func (e TimeoutError) Unwrap() error {
	return ErrTimeout
}

// TransitionRejectedError indicates that the logistics server explicitly
// refused a route state transition. The remote state is unchanged.
type TransitionRejectedError struct {
	Operation  string
	StatusCode int
	Body       string
}

// NewTransitionRejectedError creates a TransitionRejectedError carrying the
// server status code and response body.
func NewTransitionRejectedError(operation string, statusCode int, body string) TransitionRejectedError {
	return TransitionRejectedError{Operation: operation, StatusCode: statusCode, Body: body}
}

func (e TransitionRejectedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s, status is: %d, body is: %s",
		ErrTransitionRejected, e.Operation, e.StatusCode, e.Body))
}

func (e TransitionRejectedError) Unwrap() error {
	return ErrTransitionRejected
}

// InvalidConfirmationCodeError is the rejection subtype for the complete call
// when the confirmation code does not match the server record. Callers must
// re-prompt rather than treat it as fatal.
type InvalidConfirmationCodeError struct {
	RouteID string
}

// NewInvalidConfirmationCodeError creates an InvalidConfirmationCodeError for the route.
func NewInvalidConfirmationCodeError(routeID string) InvalidConfirmationCodeError {
	return InvalidConfirmationCodeError{RouteID: routeID}
}

func (e InvalidConfirmationCodeError) Error() string {
	return sanitize(fmt.Sprintf("%s: route is: %s", ErrInvalidConfirmationCode, e.RouteID))
}

func (e InvalidConfirmationCodeError) Unwrap() error {
	return ErrInvalidConfirmationCode
}

// NetworkUnavailableError indicates that no connectivity was detected before
// attempting an outbound call.
type NetworkUnavailableError struct {
	Operation string
	Cause     error
}

// NewNetworkUnavailableError creates a NetworkUnavailableError for the named operation.
func NewNetworkUnavailableError(operation string) NetworkUnavailableError {
	return NetworkUnavailableError{Operation: operation}
}

// NewNetworkUnavailableErrorWithCause creates a NetworkUnavailableError wrapping a cause.
func NewNetworkUnavailableErrorWithCause(operation string, cause error) NetworkUnavailableError {
	return NetworkUnavailableError{Operation: operation, Cause: cause}
}

func (e NetworkUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrNetworkUnavailable, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrNetworkUnavailable, e.Operation))
}

func (e NetworkUnavailableError) Unwrap() error {
	return ErrNetworkUnavailable
}
