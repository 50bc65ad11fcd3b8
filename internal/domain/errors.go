package domain

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBackendUnavailable = errors.New("loan backend unavailable")
)

// Validation errors
var (
	ErrCustomerNameRequired   = errors.New("name is required")
	ErrCustomerMobileRequired = errors.New("mobile number is required")
	ErrCustomerLoanNoRequired = errors.New("loan number is required")
	ErrLoanAmountInvalid      = errors.New("loan amount must be greater than 0")
	ErrCustomerIDRequired     = errors.New("customer ID is required")
	ErrPaymentAmountInvalid   = errors.New("payment amount must be greater than 0")
)

// FieldError ties a validation error to the input field that caused it
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every failing field of one input.
// It matches ErrInvalidInput and each field's sentinel with errors.Is.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Error()
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v)+1)
	errs = append(errs, ErrInvalidInput)
	for _, fe := range v {
		errs = append(errs, fe)
	}
	return errs
}

// orNil returns nil for an empty set so callers can `return errs.orNil()`
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
