// Package apperr defines the error classes shared by all features and maps
// them to HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in JSON error bodies.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeStore      = "STORE_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
	CodeNotFound   = "NOT_FOUND"
)

// ErrValidation is the class of client input errors. Feature sentinels wrap it.
var ErrValidation = errors.New("validation error")

// Validation returns a validation error with a client-facing message.
func Validation(msg string) error {
	return &ValidationError{msg: msg}
}

// ValidationError carries the message shown to the client.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StoreError wraps a failure of the persistence layer.
type StoreError struct {
	Op  string
	Err error
}

// Store wraps err as a StoreError for operation op. A nil err stays nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a client input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStore reports whether err came from the persistence layer.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// Classify returns the HTTP status, error code and client message for err.
// Store failures surface the underlying message.
func Classify(err error) (status int, code, message string) {
	switch {
	case err == nil:
		return http.StatusOK, "", ""
	case IsValidation(err):
		return http.StatusBadRequest, CodeValidation, err.Error()
	case IsStore(err):
		var se *StoreError
		errors.As(err, &se)
		return http.StatusInternalServerError, CodeStore, se.Err.Error()
	default:
		return http.StatusInternalServerError, CodeInternal, "internal server error"
	}
}
