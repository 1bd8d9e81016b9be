package validator_test

import (
	"testing"

	"bookshelf/internal/delivery/api/validator"
	domainerrors "bookshelf/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserName string `json:"userName" validate:"required"`
}

type ratingRequest struct {
	Rating *int `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}

func TestValidator_Success(t *testing.T) {
	v := validator.New()

	err := v.Validate(&signupRequest{Email: "ana@example.com", Password: "secret", UserName: "ana"})
	assert.NoError(t, err)
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := validator.New()

	err := v.Validate(&signupRequest{Email: "not-an-email", Password: "12345"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	fields := map[string]string{}
	for _, f := range validationErr.Fields() {
		fields[f.Field] = f.Message
	}

	assert.Equal(t, "email must be a valid email address", fields["email"])
	assert.Equal(t, "password must be at least 6 characters", fields["password"])
	assert.Equal(t, "userName is required", fields["userName"])
}

func TestValidator_NumericBounds(t *testing.T) {
	v := validator.New()

	six := 6
	err := v.Validate(&ratingRequest{Rating: &six})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Fields(), 1)
	assert.Equal(t, "rating must be less than or equal to 5", validationErr.Fields()[0].Message)

	assert.NoError(t, v.Validate(&ratingRequest{}))
}
