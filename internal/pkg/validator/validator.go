package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate struct fields, returning field->tag for each failure.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// ValidateRow checks a decoded remote row against its schema tags. Rows that
// do not match the expected shape are rejected at the boundary instead of
// being trusted downstream.
func ValidateRow(row interface{}) error {
	return validate.Struct(row)
}
