// Package validation holds the signup form rules shared by the client flow
// and the signup backend.
package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/iqbal-singh-1/ideathon/internal/models"
)

// TagIndianMobile validates a 10-digit Indian mobile number.
const TagIndianMobile = "inmobile"

// MinPasswordLength is counted in Unicode code points (runes), not bytes or
// UTF-16 units, so a password of three emoji is three characters long.
const MinPasswordLength = 6

// Rule failures, in the order they are checked.
var (
	ErrFieldsRequired   = errors.New("all fields required")
	ErrInvalidPhone     = errors.New("invalid phone")
	ErrPasswordTooShort = errors.New("password too short")
)

var mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation(TagIndianMobile, validateIndianMobile)
	return &Validator{validate: v}
}

// Signup checks req and returns the first failing rule: missing fields, then
// phone format, then password length.
func (v *Validator) Signup(req models.SignupRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var phoneBad, passwordBad bool
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return ErrFieldsRequired
		}
		switch fe.Field() {
		case "Phone":
			phoneBad = true
		case "Password":
			passwordBad = true
		}
	}

	switch {
	case phoneBad:
		return ErrInvalidPhone
	case passwordBad:
		return ErrPasswordTooShort
	}
	return err
}

// IsRuleError reports whether err is one of the signup rule failures.
func IsRuleError(err error) bool {
	return errors.Is(err, ErrFieldsRequired) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrPasswordTooShort)
}

func validateIndianMobile(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // left to required
	}
	return mobileRegex.MatchString(value)
}
