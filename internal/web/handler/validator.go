// Package handler provides shared plumbing for the web handler services.
package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type (
	// ErrorResponse represents a single field validation error.
	ErrorResponse struct {
		Field string      `json:"field"`
		Tag   string      `json:"tag"`
		Value interface{} `json:"value,omitempty"`
	}

	// XValidator is a custom validator struct.
	XValidator struct{}

	// GlobalErrorHandlerResp represents a global error response structure.
	GlobalErrorHandlerResp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}

	// ValidationErrorsResp carries the per-field detail of a rejected request.
	ValidationErrorsResp struct {
		Success bool            `json:"success"`
		Errors  []ErrorResponse `json:"errors"`
	}
)

var validate = newValidator()

// newValidator builds the shared validator instance. Field names in error
// payloads come from the json tag so callers see the wire name, not the
// Go struct field.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return v
}

// Validate performs validation on the provided data and returns a slice of ErrorResponse.
func (v XValidator) Validate(data interface{}) []ErrorResponse {
	var validationErrors []ErrorResponse

	errs := validate.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) { //nolint:errorlint,errcheck // ok here
			var elem ErrorResponse

			elem.Field = err.Field() // Export wire field name
			elem.Tag = err.Tag()     // Export struct tag
			elem.Value = err.Value() // Export field value

			validationErrors = append(validationErrors, elem)
		}
	}

	return validationErrors
}
