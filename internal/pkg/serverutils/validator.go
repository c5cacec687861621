package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RequestValidationError marks an error as a 400 for the error handler
// middleware.
type RequestValidationError struct {
	Message string
}

func (e *RequestValidationError) Error() string {
	return e.Message
}

func NewRequestValidationError(message string) *RequestValidationError {
	return &RequestValidationError{Message: message}
}

// ValidateRequest runs the struct's `validate` tags and folds violations
// into a single RequestValidationError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewRequestValidationError(err.Error())
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
	}
	return NewRequestValidationError(strings.Join(messages, "; "))
}
