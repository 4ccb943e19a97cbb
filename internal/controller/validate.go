package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks the local form preconditions. Validation happens
// entirely client-side: a failing form never issues a network call.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError marks a locally-rejected form. Prior state is always
// untouched when one is returned.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// IsValidation reports whether err is a local form-validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// checkForm runs the struct validator and folds its output into a
// single user-facing ValidationError.
func checkForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return validationErrorf("please fill in all required fields (missing %s)", fieldErrs[0].Field())
	}
	return validationErrorf("please fill in all required fields")
}
