package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError reports malformed or inconsistent input. Fields maps
// field names to messages so callers can surface field-scoped errors.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Fields: map[string][]string{field: {message}},
	}
}

func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

func (e *ValidationError) Error() string {
	for field, messages := range e.Fields {
		if len(messages) > 0 {
			return fmt.Sprintf("validation failed: %s: %s", field, messages[0])
		}
	}
	return "validation failed"
}

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Entity string
}

func NewNotFoundError(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// AuthorizationError reports that the actor has no right to perform
// the operation on the record.
type AuthorizationError struct {
	Message string
}

func NewAuthorizationError(message string) *AuthorizationError {
	return &AuthorizationError{Message: message}
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvalidTransitionError reports a status transition not permitted
// from the current state, including transitions lost to a concurrent
// update.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

func IsInvalidTransition(err error) bool {
	var target *InvalidTransitionError
	return errors.As(err, &target)
}

// FieldErrors extracts the field-level messages from a validation
// error, or nil when err is not one.
func FieldErrors(err error) map[string][]string {
	var target *ValidationError
	if errors.As(err, &target) {
		return target.Fields
	}
	return nil
}
