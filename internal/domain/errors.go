package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// PriceValidationError is raised when the client-submitted total price drifts
// beyond tolerance from the server-recomputed price. Both values are kept so
// the handler can echo them back.
type PriceValidationError struct {
	Expected int64
	Received int64
}

func (e PriceValidationError) Error() string {
	return fmt.Sprintf("harga tidak sesuai perhitungan server: server=%d client=%d", e.Expected, e.Received)
}

// DistanceValidationError mirrors PriceValidationError for route distance (meters).
type DistanceValidationError struct {
	ExpectedMeters float64
	ReceivedMeters float64
}

func (e DistanceValidationError) Error() string {
	return fmt.Sprintf("jarak tidak sesuai perhitungan server: server=%.0fm client=%.0fm", e.ExpectedMeters, e.ReceivedMeters)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsPriceValidation(err error) bool {
	var target PriceValidationError
	return errors.As(err, &target)
}

func IsDistanceValidation(err error) bool {
	var target DistanceValidationError
	return errors.As(err, &target)
}
