// Package domain defines the error taxonomy shared by all usecases:
// validation errors, not-found errors, and everything else (persistence
// failures), which wraps through untouched. Handlers map the first two to 400
// and 404; the rest is a 500.
package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

var (
	ErrCommerceNotFound = &NotFoundError{Resource: "commerce"}
	ErrCategoryNotFound = &NotFoundError{Resource: "category"}
	ErrProductNotFound  = &NotFoundError{Resource: "product"}
)

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a validation error with a human-readable message.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
