package resource

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a resource error for programmatic handling.
type Code string

const (
	// CodeInvalidConfig indicates a variant configuration that failed validation.
	// Raised during construction; no resource is observable after this error.
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// CodeInvalidTransition indicates a lifecycle operation that is not allowed
	// from the resource's current state. The resource is unchanged.
	CodeInvalidTransition Code = "INVALID_TRANSITION"

	// CodeNotFound indicates a lookup for a resource name that is not stored.
	CodeNotFound Code = "NOT_FOUND"

	// CodeAlreadyExists indicates an attempt to store a duplicate resource name.
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeTypeNotRegistered indicates a resource type name unknown to the registry.
	CodeTypeNotRegistered Code = "TYPE_NOT_REGISTERED"
)

// Error is a classified resource error with optional context.
// Every failure the core surfaces is an *Error; callers dispatch on Code
// via the Is* helpers rather than matching message text.
type Error struct {
	// Code is the error classification.
	Code Code `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Resource is the resource name the error relates to, if applicable.
	Resource string `json:"resource,omitempty"`

	// State is the lifecycle state at the time of the error, if applicable.
	State string `json:"state,omitempty"`

	// Operation is the lifecycle operation being attempted, if applicable.
	Operation string `json:"operation,omitempty"`

	// Err is the underlying error, if any.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	var ctx []string
	if e.Resource != "" {
		ctx = append(ctx, "resource="+e.Resource)
	}
	if e.State != "" {
		ctx = append(ctx, "state="+e.State)
	}
	if e.Operation != "" {
		ctx = append(ctx, "operation="+e.Operation)
	}

	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if len(ctx) > 0 {
		msg += " (" + strings.Join(ctx, ", ") + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error equality for errors.Is: two resource errors are
// equal when they carry the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithResource adds resource name context to an error.
func (e *Error) WithResource(name string) *Error {
	e.Resource = name
	return e
}

// NewInvalidConfigError creates a configuration validation error.
func NewInvalidConfigError(message string) *Error {
	return &Error{
		Code:    CodeInvalidConfig,
		Message: message,
	}
}

// NewInvalidTransitionError creates a lifecycle transition error carrying
// the current state, the attempted operation, and the reason it is disallowed.
func NewInvalidTransitionError(state State, op Op, reason string) *Error {
	return &Error{
		Code:      CodeInvalidTransition,
		Message:   fmt.Sprintf("cannot %s: %s", op, reason),
		State:     string(state),
		Operation: string(op),
	}
}

// NewNotFoundError creates an error for a resource name that is not stored.
func NewNotFoundError(name string) *Error {
	return &Error{
		Code:     CodeNotFound,
		Message:  fmt.Sprintf("resource %q not found", name),
		Resource: name,
	}
}

// NewAlreadyExistsError creates an error for a duplicate resource name.
func NewAlreadyExistsError(name string) *Error {
	return &Error{
		Code:     CodeAlreadyExists,
		Message:  fmt.Sprintf("resource %q already exists", name),
		Resource: name,
	}
}

// NewTypeNotRegisteredError creates an error for an unknown resource type.
// The message enumerates the currently registered type names to aid the caller.
func NewTypeNotRegisteredError(typeName string, known []string) *Error {
	msg := fmt.Sprintf("unknown resource type %q", typeName)
	if len(known) > 0 {
		msg += ", available types: " + strings.Join(known, ", ")
	} else {
		msg += ", no types registered"
	}
	return &Error{
		Code:    CodeTypeNotRegistered,
		Message: msg,
	}
}

// IsInvalidConfig returns true if the error is a configuration validation error.
func IsInvalidConfig(err error) bool {
	return hasCode(err, CodeInvalidConfig)
}

// IsInvalidTransition returns true if the error is a lifecycle transition error.
func IsInvalidTransition(err error) bool {
	return hasCode(err, CodeInvalidTransition)
}

// IsNotFound returns true if the error is a resource-not-found error.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsAlreadyExists returns true if the error is a duplicate-resource error.
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsTypeNotRegistered returns true if the error is an unknown-type error.
func IsTypeNotRegistered(err error) bool {
	return hasCode(err, CodeTypeNotRegistered)
}

func hasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
