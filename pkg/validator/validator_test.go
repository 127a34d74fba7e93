package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
	Medecin  string `json:"medecinId" validate:"omitempty,uuid"`
	Start    string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	Internal string `json:"-"`
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Email: "nope", Role: "root", Medecin: "x", Start: "01/03/2024"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "role must be one of: admin, user", errs["role"])
	assert.Equal(t, "medecinId must be a valid UUID", errs["medecinId"])
	assert.Equal(t, "from must be a date formatted as 2006-01-02", errs["from"])
}

func TestValidatePassesValidInput(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&sample{Email: "a@b.co", Role: "user"}))
}
