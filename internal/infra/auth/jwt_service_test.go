package auth

import (
	"testing"
	"time"

	"articlehub/config"
	"articlehub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func TestJWTService_GenerateAndResolve(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	resolved, ok := svc.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, userID, resolved)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestJWTService_DefaultTTLIs100Hours(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	assert.Equal(t, 100*time.Hour, svc.TTL())
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TTL())
}

func TestJWTService_ExpiresAfterTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := newJWTService(testSecret, 100*time.Hour, clock.Now)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	clock.now = clock.now.Add(99 * time.Hour)
	resolved, ok := svc.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, userID, resolved)

	clock.now = clock.now.Add(2 * time.Hour)
	resolved, ok = svc.Resolve(token)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, resolved)
}

func TestJWTService_ResolveRejects(t *testing.T) {
	svc := newJWTService(testSecret, time.Hour, time.Now)
	other := newJWTService("another_secret_key_that_does_not_match", time.Hour, time.Now)

	foreignToken, err := other.GenerateToken(uuid.New())
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, service.Claims{
		UserID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, service.Claims{
		UserID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiryToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		UserID: uuid.NewString(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badUserToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		UserID: "not-a-uuid",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "clearly-not-a-jwt-token-format"},
		{"wrong secret", foreignToken},
		{"alg none", noneToken},
		{"unexpected hmac variant", hs512Token},
		{"missing expiry", noExpiryToken},
		{"user id is not a uuid", badUserToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, ok := svc.Resolve(tt.token)
			assert.False(t, ok)
			assert.Equal(t, uuid.Nil, resolved)

			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
