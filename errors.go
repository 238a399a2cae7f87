package restkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for RestKit operations.
var (
	// ErrInvalidResource is returned when a resource is declared without a
	// singular or plural name.
	ErrInvalidResource = errors.New("restkit: invalid resource")

	// ErrInvalidAction is returned when an activation names an action outside
	// the fixed CRUD set.
	ErrInvalidAction = errors.New("restkit: invalid action")

	// ErrInvalidFeature is returned when a feature is declared without a name,
	// handler, or HTTP method.
	ErrInvalidFeature = errors.New("restkit: invalid feature")

	// ErrAlreadyMounted is returned when a resource is mounted twice.
	ErrAlreadyMounted = errors.New("restkit: resource already mounted")

	// ErrAccessDenied is returned by access checks to reject a request before
	// the pipeline runs.
	ErrAccessDenied = errors.New("restkit: access denied")

	// ErrSubscriberFailed wraps an error returned by an event subscriber.
	ErrSubscriberFailed = errors.New("restkit: event subscriber failed")

	// ErrInvalidConfig is returned when a provider configuration is incomplete.
	ErrInvalidConfig = errors.New("restkit: invalid provider config")
)

// Error codes carried on a Context by providers. These travel in
// Context.ErrorCode, never as returned errors.
const (
	CodeNotFound       = "not_found"
	CodeConflict       = "conflict"
	CodeInvalidPayload = "invalid_payload"
	CodeStorageError   = "storage_error"
)

// Error wraps a sentinel error with composition context.
type Error struct {
	Err      error  // Underlying sentinel error
	Message  string // Additional context
	Resource string // Resource (singular name) involved
	Action   string // Action or feature involved (if applicable)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a target error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new Error with context.
func NewError(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// WithResource adds resource information to the error.
func (e *Error) WithResource(name string) *Error {
	e.Resource = name
	return e
}

// WithAction adds action information to the error.
func (e *Error) WithAction(action string) *Error {
	e.Action = action
	return e
}

// IsInvalidResource checks if an error is due to an invalid resource declaration.
func IsInvalidResource(err error) bool {
	return errors.Is(err, ErrInvalidResource)
}

// IsInvalidAction checks if an error is due to an unknown action activation.
func IsInvalidAction(err error) bool {
	return errors.Is(err, ErrInvalidAction)
}

// IsInvalidFeature checks if an error is due to an invalid feature declaration.
func IsInvalidFeature(err error) bool {
	return errors.Is(err, ErrInvalidFeature)
}

// IsAccessDenied checks if an error is an access-control rejection.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}
