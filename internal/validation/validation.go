// Package validation holds the field rules shared by the CLI forms and the
// server request schemas: credential shape on login/register and contact
// field rules on create/edit. The client uses it to reject obviously bad
// input without a round trip; the server revalidates every request with the
// same rules.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	phoneRe    = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
)

// Validator wraps go-playground/validator with the domain's custom rules:
//
//	ck_username — letters, digits, '-' and '_' only
//	ck_password — at least one upper, lower, digit and one of !@#$%^&*()
//	ck_phone    — permissive international phone pattern
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("ck_username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ck_password", func(fl validator.FieldLevel) bool {
		return passwordStrong(fl.Field().String())
	})
	_ = v.RegisterValidation("ck_phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	return &Validator{v: v}
}

// Struct validates any tagged struct and reports the first violation as a
// single human-readable message, the way form errors are shown to the user.
func (c *Validator) Struct(s any) error {
	err := c.v.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return errors.New(fieldError(ve[0]))
	}
	return err
}

func passwordStrong(s string) bool {
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("!@#$%^&*()", r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// fieldError converts a single violation into the message shown to the user.
func fieldError(fe validator.FieldError) string {
	field := snake(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "ck_username":
		return field + " may contain only letters, numbers, - and _"
	case "ck_password":
		return field + " must contain an uppercase letter, a lowercase letter, a number and a special character (!@#$%^&*())"
	case "ck_phone":
		return field + " is not a valid phone number"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// snake renders a Go field name the way the form labels it (FirstName ->
// first_name).
func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
