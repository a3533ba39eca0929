package validator

import (
	"testing"

	"bookmarks/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&credentials{Email: "a@x.com", Password: "pw"}))

	err := v.Validate(&credentials{Email: "not-an-email"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.ElementsMatch(t, []FieldError{
		{Field: "email", Rule: "email"},
		{Field: "password", Rule: "required"},
	}, validationErr.Fields)
	assert.Contains(t, err.Error(), "email failed email")
}
