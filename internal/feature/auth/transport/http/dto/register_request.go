// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

import (
	"regexp"
	"strings"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/shared/validation"
)

var (
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
	symbolPattern = regexp.MustCompile(`[!@#$%^&*()]`)
)

// passwordRules is the shared rule list for password-class fields.
func passwordRules() []validation.Rule {
	return []validation.Rule{
		validation.MinLen(8, "Password must be at least 8 characters long"),
		validation.Matches(upperPattern, "Password must contain at least one uppercase letter"),
		validation.Matches(lowerPattern, "Password must contain at least one lowercase letter"),
		validation.Matches(digitPattern, "Password must contain at least one number"),
		validation.Matches(symbolPattern, "Password must contain at least one special character"),
	}
}

// registerSchema declares the validation rules for POST /register.
// Rules are evaluated in order and all violations are reported; the
// password/confirmation match is a cross-field refinement reported against
// confirmPassword.
var registerSchema = &validation.Schema{
	Fields: []validation.FieldSpec{
		{
			Name: "name",
			Rules: []validation.Rule{
				validation.NonEmpty("Name cannot be empty"),
				validation.MaxLen(100, "Name must be less than 100 characters"),
			},
		},
		{
			Name: "email",
			Rules: []validation.Rule{
				validation.NonEmpty("Email cannot be empty"),
				validation.MaxLen(100, "Email must be less than 100 characters"),
				validation.Email("Invalid email address format"),
			},
		},
		{
			Name:  "password",
			Rules: passwordRules(),
		},
		{
			Name:  "confirmPassword",
			Rules: passwordRules(),
		},
	},
	Refinements: []validation.Refinement{
		{
			Field: "confirmPassword",
			Check: func(get func(string) string) bool {
				return get("password") == get("confirmPassword")
			},
			Message: "Passwords do not match",
		},
	},
}

// RegisterRequest represents the request body for the /register endpoint.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	UserAgent       string `json:"userAgent,omitempty"`
}

// field maps schema field names onto the request values.
func (r *RegisterRequest) field(name string) string {
	switch name {
	case "name":
		return r.Name
	case "email":
		return r.Email
	case "password":
		return r.Password
	case "confirmPassword":
		return r.ConfirmPassword
	}
	return ""
}

// Validate normalizes the request in place and evaluates the registration
// schema. On success the trimmed request is what reaches the controller;
// downstream code must not re-validate.
func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	return registerSchema.Validate(r.field)
}

// RegisterResponse is the success envelope for POST /register.
type RegisterResponse struct {
	Message string          `json:"message"`
	Data    entity.SafeUser `json:"data"`
}
