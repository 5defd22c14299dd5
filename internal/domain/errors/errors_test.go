package errors

import (
	"net/http"
	"testing"

	"articlehub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrArticleNotFound.WrapMessage("slug lookup")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Article does not exist!", appErr.Message())
	assert.True(t, errors.Is(err, ErrArticleNotFound))
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	detailed := ErrInvalidToken.WithDetails("token is expired")

	assert.True(t, errors.Is(detailed, ErrInvalidToken))
	assert.False(t, errors.Is(detailed, ErrUnauthorizedUser))
	assert.Equal(t, "token is expired", detailed.Details())
	assert.Equal(t, "Auth Token is Invalid or Expired", detailed.Message())
}

func TestDatabaseExecuteError_HidesDriverMessage(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := NewDatabaseExecuteError(cause, "list articles")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, ErrInternalError.Message(), err.Message())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "database execution failed")
}
