// Package validation implements a declarative request-schema validator.
// A schema is an ordered rule table per field plus a list of cross-field
// refinements. Evaluation never short-circuits: every violated rule produces
// one field error, so clients always receive the complete list.
package validation

import (
	"regexp"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
)

// validate is the shared go-playground instance used for format checks.
var validate = playground.New(playground.WithRequiredStructEnabled())

// FieldError reports a single violated rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates all violations found in one evaluation pass.
type Error struct {
	Violations []FieldError
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "Validation failed"
}

// Rule checks a single string value.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// FieldSpec declares the ordered rules for one named field.
type FieldSpec struct {
	Name  string
	Rules []Rule
}

// Refinement is a cross-field rule reported against a named field.
type Refinement struct {
	Field   string
	Check   func(get func(name string) string) bool
	Message string
}

// Schema is the declarative description of a request payload.
type Schema struct {
	Fields      []FieldSpec
	Refinements []Refinement
}

// Validate evaluates every field rule, then every refinement, in declaration
// order. It returns a *Error carrying all violations, or nil.
func (s *Schema) Validate(get func(name string) string) error {
	var violations []FieldError
	for _, field := range s.Fields {
		value := get(field.Name)
		for _, rule := range field.Rules {
			if !rule.Check(value) {
				violations = append(violations, FieldError{Field: field.Name, Message: rule.Message})
			}
		}
	}
	for _, ref := range s.Refinements {
		if !ref.Check(get) {
			violations = append(violations, FieldError{Field: ref.Field, Message: ref.Message})
		}
	}
	if len(violations) > 0 {
		return &Error{Violations: violations}
	}
	return nil
}

// NonEmpty requires a non-empty value.
func NonEmpty(message string) Rule {
	return Rule{
		Check:   func(value string) bool { return value != "" },
		Message: message,
	}
}

// MinLen requires at least n characters.
func MinLen(n int, message string) Rule {
	return Rule{
		Check:   func(value string) bool { return utf8.RuneCountInString(value) >= n },
		Message: message,
	}
}

// MaxLen requires at most n characters.
func MaxLen(n int, message string) Rule {
	return Rule{
		Check:   func(value string) bool { return utf8.RuneCountInString(value) <= n },
		Message: message,
	}
}

// Matches requires the value to match the given pattern.
func Matches(pattern *regexp.Regexp, message string) Rule {
	return Rule{
		Check:   func(value string) bool { return pattern.MatchString(value) },
		Message: message,
	}
}

// Email requires an RFC-shaped email address.
func Email(message string) Rule {
	return Rule{
		Check:   func(value string) bool { return validate.Var(value, "email") == nil },
		Message: message,
	}
}
