package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance that reports fields by their mapstructure key,
// so errors read like the config file ("mongo.uri") rather than Go field names.
func New() *Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return validate
}
