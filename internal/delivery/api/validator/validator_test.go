package validator

import (
	"strings"
	"testing"

	"articlehub/internal/delivery/api/response"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"required,max=5"`
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidator_ReportsFieldsByJSONName(t *testing.T) {
	err := New().Validate(&signup{Name: "Johnathan", Email: "nope", Password: "abc"})

	var verr *response.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{
		"name":     "must be at most 5 characters",
		"email":    "must be a valid email address",
		"password": "must be at least 6 characters",
	}, verr.Fields)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestValidator_Required(t *testing.T) {
	err := New().Validate(&signup{})

	var verr *response.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "is required", verr.Fields["email"])
	assert.Len(t, verr.Fields, 3)
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&signup{Name: "John", Email: "john@example.com", Password: "secret"}))
}

type credentials struct {
	Password string `json:"password" validate:"required,maxbytes=72"`
}

func TestValidator_MaxBytesCountsEncodedLength(t *testing.T) {
	// 40 runes, 80 bytes
	err := New().Validate(&credentials{Password: strings.Repeat("é", 40)})

	var verr *response.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"password": "must be at most 72 bytes"}, verr.Fields)

	assert.NoError(t, New().Validate(&credentials{Password: strings.Repeat("é", 36)}))
	assert.NoError(t, New().Validate(&credentials{Password: strings.Repeat("a", 72)}))
}
