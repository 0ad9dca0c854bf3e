package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iqbal-singh-1/ideathon/internal/models"
)

func validRequest() models.SignupRequest {
	return models.SignupRequest{
		FullName: "Asha Verma",
		UID:      "PB-10422",
		Phone:    "9876543210",
		Password: "secret1",
	}
}

func TestSignupValidation(t *testing.T) {
	v := New()

	t.Run("Valid Request", func(t *testing.T) {
		assert.NoError(t, v.Signup(validRequest()))
	})

	t.Run("Missing Fields", func(t *testing.T) {
		for _, mutate := range []func(*models.SignupRequest){
			func(r *models.SignupRequest) { r.FullName = "" },
			func(r *models.SignupRequest) { r.UID = "" },
			func(r *models.SignupRequest) { r.Phone = "" },
			func(r *models.SignupRequest) { r.Password = "" },
		} {
			req := validRequest()
			mutate(&req)
			assert.ErrorIs(t, v.Signup(req), ErrFieldsRequired)
		}
	})

	t.Run("Missing Field Wins Over Bad Phone", func(t *testing.T) {
		req := validRequest()
		req.FullName = ""
		req.Phone = "123"
		req.Password = "x"
		assert.ErrorIs(t, v.Signup(req), ErrFieldsRequired)
	})

	t.Run("Invalid Phone", func(t *testing.T) {
		for _, phone := range []string{
			"12345",
			"5123456789",
			"0987654321",
			"98765432100",
			"987654321",
			"98765 4321",
			"+919876543210",
			"98765432a0",
		} {
			req := validRequest()
			req.Phone = phone
			assert.ErrorIs(t, v.Signup(req), ErrInvalidPhone, phone)
		}
	})

	t.Run("Bad Phone Wins Over Short Password", func(t *testing.T) {
		req := validRequest()
		req.Phone = "5123456789"
		req.Password = "abc"
		assert.ErrorIs(t, v.Signup(req), ErrInvalidPhone)
	})

	t.Run("Valid Leading Digits", func(t *testing.T) {
		for _, lead := range []string{"6", "7", "8", "9"} {
			req := validRequest()
			req.Phone = lead + "123456789"
			assert.NoError(t, v.Signup(req))
		}
	})

	t.Run("Password Length Boundary", func(t *testing.T) {
		req := validRequest()
		req.Password = strings.Repeat("a", 5)
		assert.ErrorIs(t, v.Signup(req), ErrPasswordTooShort)

		req.Password = strings.Repeat("a", 6)
		assert.NoError(t, v.Signup(req))
	})

	t.Run("Password Length Counts Runes", func(t *testing.T) {
		req := validRequest()
		req.Password = strings.Repeat("é", 6)
		assert.NoError(t, v.Signup(req))

		// Three emoji are six UTF-16 units but only three runes.
		req.Password = strings.Repeat("\U0001F600", 3)
		assert.ErrorIs(t, v.Signup(req), ErrPasswordTooShort)
	})

	t.Run("Rule Errors", func(t *testing.T) {
		assert.True(t, IsRuleError(ErrInvalidPhone))
		assert.False(t, IsRuleError(assert.AnError))
	})
}
