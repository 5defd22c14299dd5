package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"articlehub/internal/delivery/api/response"
	"articlehub/internal/domain/entity"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/errors"
	mockUsecase "articlehub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantOK    bool
	}{
		{header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi", wantOK: true},
		{header: "bearer abc", wantToken: "abc", wantOK: true},
		{header: "  Bearer   abc  ", wantToken: "abc", wantOK: true},
		{header: "", wantOK: false},
		{header: "Bearer", wantOK: false},
		{header: "Bearer    ", wantOK: false},
		{header: "Basic dXNlcjpwYXNz", wantOK: false},
		{header: "abc.def.ghi", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, ok := bearerToken(tt.header)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := entity.NewUser("John Doe", "johndoe@example.com", "hash")

	t.Run("stores the resolved user", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "good-token").Return(user, nil)
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		var seen *entity.User
		err := m.Authenticate(func(c echo.Context) error {
			seen, _ = GetUser(c)

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, user, seen)
	})

	t.Run("missing header never reaches the use case", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: mockUsecase.NewMockAuthUsecase(t)})

		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		err := m.Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(c)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorizedUser))
	})

	t.Run("rejected token", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrInvalidToken)
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := m.Authenticate(func(echo.Context) error { return nil })(c)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		_, ok := GetUser(c)
		assert.False(t, ok)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
		wantData    any
	}{
		{
			name:        "app error",
			err:         domainerrors.ErrArticleNotFound.WrapMessage("lookup"),
			wantCode:    http.StatusNotFound,
			wantMessage: "Article does not exist!",
		},
		{
			name:        "validation error carries fields",
			err:         response.NewValidationError(map[string]string{"email": "is required"}),
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: "Invalid Entry",
			wantData:    map[string]any{"email": "is required"},
		},
		{
			name:        "echo not found",
			err:         echo.ErrNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "echo method not allowed",
			err:         echo.ErrMethodNotAllowed,
			wantCode:    http.StatusMethodNotAllowed,
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error is hidden",
			err:         errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error, please try again later",
		},
	}

	m := NewErrorMiddleware(newDiscardLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantCode, rec.Code)
			var env response.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, response.StatusFailure, env.Status)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Equal(t, tt.wantData, env.Data)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
