// Package errs defines the domain error taxonomy shared by the ledger and
// account services. Every condition here is deterministic for a given input
// and state, so none of them is retryable.
package errs

import "errors"

// ValidationError reports malformed or out-of-range input. Always
// caller-recoverable; the reason is safe to surface verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidation(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// ConflictError reports a uniqueness violation, e.g. a duplicate email at
// signup.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func NewConflict(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// AuthError reports rejected credentials. The message must not reveal
// whether the account exists.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return e.Reason
}

func NewAuth(reason string) *AuthError {
	return &AuthError{Reason: reason}
}

// NotFoundError reports an unknown account or entry id on updates and
// lookups. Deletes treat a missing id as a no-op instead.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return e.Reason
}

func NewNotFound(reason string) *NotFoundError {
	return &NotFoundError{Reason: reason}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
