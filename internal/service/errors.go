package service

import (
	"errors"

	"inmate-management-backend/internal/validation"
)

// Error kinds. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrDuplicate  = errors.New("duplicate key")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Error is a domain failure carrying the message shown to the caller
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// validate runs struct rules and converts the first violation
func validate(v interface{}) error {
	err := validation.Struct(v)
	if err == nil {
		return nil
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		return newError(ErrValidation, verr.Message)
	}
	return newError(ErrValidation, err.Error())
}
