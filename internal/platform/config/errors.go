package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// ErrConfiguration matches every [*ConfigurationError] via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError is the single error kind surfaced by configuration
// resolution. Context carries diagnostic data (offending path, value,
// violations) and never holds secret material.
type ConfigurationError struct {
	Message string
	Context map[string]any
	Err     error
}

func newConfigError(msg string, err error, kv ...any) *ConfigurationError {
	ctx := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kv[i+1]
	}
	if err != nil {
		ctx["cause"] = err.Error()
	}
	return &ConfigurationError{Message: msg, Context: ctx, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying cause, if any.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is reports true for [ErrConfiguration].
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// LogValue implements slog.LogValuer so the error can be logged with its
// context as a group.
func (e *ConfigurationError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.Context)+1)
	attrs = append(attrs, slog.String("message", e.Message))
	for _, k := range slices.Sorted(maps.Keys(e.Context)) {
		attrs = append(attrs, slog.Any(k, e.Context[k]))
	}
	return slog.GroupValue(attrs...)
}

// Mode selects how strictly the schema validator treats missing fields.
type Mode string

// Validation modes.
const (
	// ModeFile tolerates absent fields; used for the configuration file.
	ModeFile Mode = "file"
	// ModeFinal requires a complete, well-formed configuration.
	ModeFinal Mode = "final"
)

// Violation is a single field-level schema failure.
type Violation struct {
	Field      string
	Constraint string
	Message    string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// ValidationError lists every violated field and constraint from one
// validation pass. Use errors.As to access the violations.
type ValidationError struct {
	Mode       Mode
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s validation failed: %s", e.Mode, strings.Join(parts, "; "))
}

// Fields returns the names of the violated fields in order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func violationStrings(err error) []string {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	out := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		out = append(out, v.String())
	}
	return out
}
