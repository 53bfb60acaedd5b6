package importer

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrProfileNotFound = errors.New("user profile not found")
	ErrUnknownType     = errors.New("unknown import type")
	ErrTooManyRows     = errors.New("too many rows")
)

// UnknownTypeError carries the rejected type for the client message.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("Unknown import type: %s", e.Type)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// ValidationError rejects a single row. Message is shown to the client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	errVINRequired       = &ValidationError{Message: "VIN is required"}
	errInvalidVIN        = &ValidationError{Message: "Invalid VIN format"}
	errCustomerNameEmpty = &ValidationError{Message: "First name and last name are required"}
	errPartFieldsEmpty   = &ValidationError{Message: "Part number and name are required"}
)
