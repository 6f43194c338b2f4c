// Package errs defines the typed errors shared by the ledger stores,
// controller and front ends.
package errs

import (
	"errors"
	"fmt"
)

const (
	// MsgDuplicateID is shown when the backing store reports an id conflict.
	MsgDuplicateID = "Transaction ID already exists"
	// MsgUnexpected is shown for errors outside the taxonomy.
	MsgUnexpected = "An unexpected error occurred"
)

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// ValidationError is raised before any I/O when a draft is rejected.
type ValidationError struct {
	ErrorMessage
	Field string
}

// ConflictError signals the backing store already holds the identifier.
type ConflictError struct {
	ErrorMessage
	ID string
}

type NotFoundError struct {
	ErrorMessage
}

// TransportError wraps storage and network failures. Message is the generic
// text for the operation; Err is the underlying cause, if any.
type TransportError struct {
	ErrorMessage
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Message, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: status %d", e.Message, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TransportError) Unwrap() error { return e.Err }

// RangeError reports a page request outside the valid range.
type RangeError struct {
	ErrorMessage
	Page  int
	Pages int
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
		Field:        field,
	}
}

func NewConflictError(id string) *ConflictError {
	return &ConflictError{
		ErrorMessage: ErrorMessage{Message: MsgDuplicateID},
		ID:           id,
	}
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewTransportError(op, message string, status int, err error) *TransportError {
	return &TransportError{
		ErrorMessage: ErrorMessage{Message: message},
		Op:           op,
		Status:       status,
		Err:          err,
	}
}

// NewRangeError builds the error for a zero-based page outside [0, pages).
func NewRangeError(page, pages int) *RangeError {
	msg := fmt.Sprintf("page %d is out of range", page+1)
	if pages > 0 {
		msg = fmt.Sprintf("page %d is out of range (1-%d)", page+1, pages)
	}
	return &RangeError{
		ErrorMessage: ErrorMessage{Message: msg},
		Page:         page,
		Pages:        pages,
	}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}

// UserMessage returns the text a front end should show for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var (
		v *ValidationError
		c *ConflictError
		n *NotFoundError
		t *TransportError
		r *RangeError
	)
	switch {
	case errors.As(err, &v):
		return v.Message
	case errors.As(err, &c):
		return c.Message
	case errors.As(err, &n):
		return n.Message
	case errors.As(err, &t):
		return t.Message
	case errors.As(err, &r):
		return r.Message
	default:
		return MsgUnexpected
	}
}
