package shared

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/task-api/internal/domain"
)

// Validate is the shared validator instance. Besides the built-in tags it
// knows "iso8601", which accepts any string domain.ParseDueDate accepts.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON field names (dueDate, assignedTo) rather than Go names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	// ALLOW-PANIC: registration only fails for an empty tag name
	if err := v.RegisterValidation("iso8601", validateISO8601); err != nil {
		panic(err)
	}

	return v
}

// validateISO8601 reports whether the field parses as a due date.
// Empty strings pass; presence is the job of "required".
// The validator dereferences pointers before calling it.
func validateISO8601(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	if field.String() == "" {
		return true
	}
	_, err := domain.ParseDueDate(field.String())
	return err == nil
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	// Otherwise, use the struct validator
	return Validate.Struct(v)
}
