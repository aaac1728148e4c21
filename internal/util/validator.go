package util

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// credit: https://github.com/go-playground/validator/issues/559#issuecomment-976459959

type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) String() string {
	return fe.Message
}

func msgForTag(fe validator.FieldError) string {
	field := fe.Namespace()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "gt":
		return fmt.Sprintf("%v must be greater than %v", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%v must be less than or equal to %v", field, fe.Param())
	case "gtfield":
		return fmt.Sprintf("%v must be greater than %v", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%v must be a hex color such as #1F293B", field)
	case "oneof":
		return fmt.Sprintf("%v must be one of [%v]", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%v must not contain duplicates", field)
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace charaters", field)
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error() // default error
}

// NewValidator returns a validator with the custom tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		panic(fmt.Sprintf("failed to register strNotEmpty validation: %v", err))
	}
	return v
}

// GenerateFieldErrors extracts validation errors into one FieldError per failed field.
func GenerateFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]FieldError, len(ve))
		for i, fe := range ve {
			out[i] = FieldError{Field: fe.Namespace(), Message: msgForTag(fe)}
		}
		return out
	}

	return []FieldError{{Field: "Unknown", Message: err.Error()}}
}

/*
Extract error from validator and join every message in one error
Example output: "Layout.Fields[0].Name is required; Layout.Fields[0].Size must be greater than 0"
*/
func ValidationError(err error) error {
	if err == nil {
		return nil
	}

	fieldErrors := GenerateFieldErrors(err)
	msgs := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		msgs[i] = fe.Message
	}
	return errors.New(strings.Join(msgs, "; "))
}

// check if string is empty, after trimming spaces
// Usage: `validate:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return len(strings.TrimSpace(field.String())) > 0
}
