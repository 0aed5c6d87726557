package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=8"`
}

func TestFromBindErrorMapsJSONTags(t *testing.T) {
	v := validator.New()
	err := v.Struct(&signupForm{Username: "ab", Email: "not-an-email"})
	require.Error(t, err)

	fields := FromBindError(err, &signupForm{})
	assert.Equal(t, "Must be at least 3 characters.", fields["username"])
	assert.Equal(t, "Please enter a valid email address.", fields["email"])
	assert.Equal(t, "This field is required.", fields["password"])
}

func TestFromBindErrorNonValidation(t *testing.T) {
	fields := FromBindError(assert.AnError, &signupForm{})
	assert.Equal(t, "Invalid request body.", fields["_"])
}
