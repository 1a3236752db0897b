package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks a candidate configuration value against the schema.
// On failure it returns a [*ValidationError] listing every violation.
type Validator interface {
	Validate(value any, mode Mode) error
}

// Compile-time interface check.
var _ Validator = (*SchemaValidator)(nil)

// SchemaValidator validates [Config] and [Partial] values using their
// `validate` struct tags. Field names in violations are the koanf keys.
type SchemaValidator struct {
	v *validator.Validate
}

// NewSchemaValidator creates a validator for configuration values.
func NewSchemaValidator() *SchemaValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &SchemaValidator{v: v}
}

// Validate checks value in the given mode. File mode accepts only
// [Partial] values; final mode accepts only [Config] values.
func (s *SchemaValidator) Validate(value any, mode Mode) error {
	switch mode {
	case ModeFile:
		if !isType[Partial](value) {
			return fmt.Errorf("file mode expects config.Partial, got %T", value)
		}
	case ModeFinal:
		if !isType[Config](value) {
			return fmt.Errorf("final mode expects config.Config, got %T", value)
		}
	default:
		return fmt.Errorf("unknown validation mode %q", mode)
	}

	err := s.v.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating %s config: %w", mode, err)
	}

	verr := &ValidationError{Mode: mode, Violations: make([]Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Violations = append(verr.Violations, Violation{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Message:    describe(fe),
		})
	}
	return verr
}

func isType[T any](value any) bool {
	switch value.(type) {
	case T, *T:
		return true
	default:
		return false
	}
}

// describe renders a field error without echoing the offending value.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must be at least " + fe.Param()
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
