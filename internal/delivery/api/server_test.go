package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"articlehub/config"
	"articlehub/internal/delivery/api"
	apimiddleware "articlehub/internal/delivery/api/middleware"
	"articlehub/internal/delivery/api/router"
	"articlehub/internal/delivery/api/router/handler"
	deliverymiddleware "articlehub/internal/delivery/middleware"
	"articlehub/internal/domain/service"
	"articlehub/internal/infra/auth"
	"articlehub/internal/infra/metrics"
	"articlehub/internal/infra/qrcode"
	"articlehub/internal/infra/sanitizer"
	"articlehub/internal/testutil"
	"articlehub/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testApp struct {
	echo      *echo.Echo
	store     *testutil.Store
	tokens    service.TokenService
	publisher *testutil.Publisher
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Article: &config.ArticleConfig{
			SlugRandomAttempts:   10,
			SlugFallbackAttempts: 100,
			CreateRetries:        3,
		},
		RateLimit: &config.RateLimitConfig{
			Enabled:        true,
			RequestsPerMin: 1,
			Burst:          5,
		},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

// newTestApp wires the real use cases to an in-memory store, seeded with the
// demo users and articles.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	return newTestAppWithConfig(t, newTestConfig())
}

func newTestAppWithConfig(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()

	logger := newDiscardLogger()
	store := testutil.NewStore()
	registry := metrics.NewRegistry()
	collector := metrics.NewCollector(registry)
	ranking := testutil.NewRanking()
	publisher := &testutil.Publisher{}
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     store.UserRepo(),
		Hasher:       hasher,
		TokenService: tokens,
		Metrics:      collector,
		Logger:       logger,
	})
	articleUC := impl.NewArticleService(impl.ArticleServiceParams{
		TxManager:   store,
		ArticleRepo: store.ArticleRepo(),
		Sanitizer:   sanitizer.NewContentSanitizer(),
		Ranking:     ranking,
		QRCode:      qrcode.NewQRCodeService(128, "M", "http://articlehub.test/api/v1"),
		Metrics:     collector,
		Config:      cfg,
		Logger:      logger,
	})
	likeUC := impl.NewLikeService(impl.LikeServiceParams{
		TxManager:   store,
		ArticleRepo: store.ArticleRepo(),
		Ranking:     ranking,
		Publisher:   publisher,
		Metrics:     collector,
		Logger:      logger,
	})

	seed := impl.NewSeedService(impl.SeedServiceParams{
		TxManager: store,
		Hasher:    hasher,
		Articles:  articleUC,
		Logger:    logger,
	})
	require.NoError(t, seed.Seed(context.Background()))

	rateLimiter := deliverymiddleware.NewRateLimiter(cfg.RateLimit, logger)
	t.Cleanup(rateLimiter.Stop)

	e := api.NewEcho(api.ServerParams{
		Cfg:          cfg,
		Logger:       logger,
		Registry:     registry,
		Collector:    collector,
		ErrorHandler: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
			ArticleHandler: handler.NewArticleHandler(handler.ArticleHandlerParams{
				ArticleUC: articleUC,
				LikeUC:    likeUC,
				Logger:    logger,
			}),
			RankingHandler: handler.NewRankingHandler(handler.RankingHandlerParams{ArticleUC: articleUC}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: authUC}),
			RateLimiter:    rateLimiter,
		},
	})

	return &testApp{echo: e, store: store, tokens: tokens, publisher: publisher}
}

func (a *testApp) do(t *testing.T, method, path string, body any, authorization string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return a.serve(t, req)
}

// serve runs req through the router and decodes the JSON envelope, if any.
func (a *testApp) serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (a *testApp) login(t *testing.T, email, password string) string {
	t.Helper()

	rec, env := a.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data handler.TokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)

	return "Bearer " + data.Token
}

func decodeArticles(t *testing.T, raw json.RawMessage) []handler.ArticleResponse {
	t.Helper()

	var articles []handler.ArticleResponse
	require.NoError(t, json.Unmarshal(raw, &articles))

	return articles
}

func decodeFields(t *testing.T, raw json.RawMessage) map[string]string {
	t.Helper()

	var fields map[string]string
	require.NoError(t, json.Unmarshal(raw, &fields))

	return fields
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/api/v1/healthcheck", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "pong!", env.Message)
	assert.NotContains(t, rec.Body.String(), `"data"`)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	t.Run("valid credentials return a token", func(t *testing.T) {
		rec, env := app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "johndoe@example.com",
			"password": "johndoe",
		}, "")

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "success", env.Status)
		assert.Equal(t, "Login successful", env.Message)

		var data handler.TokenResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		_, ok := app.tokens.Resolve(data.Token)
		assert.True(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec, env := app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "johndoe@example.com",
			"password": "janedoe",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "failure", env.Status)
		assert.Equal(t, "Invalid credentials", env.Message)
		assert.Empty(t, env.Data)
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		rec, env := app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "johndoe",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", env.Message)
	})

	t.Run("missing password", func(t *testing.T) {
		rec, env := app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email": "johndoe@example.com",
		}, "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Invalid Entry", env.Message)
		assert.Equal(t, "is required", decodeFields(t, env.Data)["password"])
	})
}

func TestLogin_MalformedBody(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":`, "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Invalid Entry", env.Message)
	assert.Contains(t, decodeFields(t, env.Data), "body")
}

func TestLogin_RateLimited(t *testing.T) {
	app := newTestApp(t)

	body := map[string]string{"email": "johndoe@example.com", "password": "wrong"}
	for range 5 {
		rec, _ := app.do(t, http.MethodPost, "/api/v1/auth/login", body, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/login", body, "")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests, please try again later", env.Message)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Routes outside /auth are not limited.
	rec, _ = app.do(t, http.MethodGet, "/api/v1/articles", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func newLoginRequest(forwardedFor string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"johndoe@example.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)

	return req
}

func TestLogin_RateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	app := newTestApp(t)

	// Every attempt claims a different client but comes from the same peer.
	for i := range 5 {
		rec, _ := app.serve(t, newLoginRequest(fmt.Sprintf("10.0.0.%d", i+1)))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec, env := app.serve(t, newLoginRequest("10.0.0.99"))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests, please try again later", env.Message)
}

func TestLogin_RateLimitHonoursForwardedForFromTrustedProxy(t *testing.T) {
	cfg := newTestConfig()
	// httptest requests arrive from 192.0.2.1
	cfg.HTTP.TrustedProxies = []string{"192.0.2.0/24", "not-a-cidr"}
	app := newTestAppWithConfig(t, cfg)

	for range 5 {
		rec, _ := app.serve(t, newLoginRequest("203.0.113.7"))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec, _ := app.serve(t, newLoginRequest("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different client behind the same proxy has its own bucket.
	rec, _ = app.serve(t, newLoginRequest("203.0.113.8"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_PasswordOverByteLimit(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": strings.Repeat("é", 40),
	}, "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Invalid Entry", env.Message)
	assert.Equal(t, "must be at most 72 bytes", decodeFields(t, env.Data)["password"])
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "Ada",
		"email":    "Ada@Example.com",
		"password": "lovelace",
	}, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Registration successful", env.Message)
	assert.NotContains(t, rec.Body.String(), "password")

	var user handler.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)

	// The new account can log in with a differently cased email.
	app.login(t, "ADA@example.com", "lovelace")

	rec, env = app.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "Ada again",
		"email":    "ada@example.com",
		"password": "lovelace",
	}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", env.Message)

	rec, env = app.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "Bad",
		"email":    "not-an-email",
		"password": "x",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fields := decodeFields(t, env.Data)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestListAndGetArticles(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/api/v1/articles", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Articles fetched successfully", env.Message)

	articles := decodeArticles(t, env.Data)
	require.Len(t, articles, 2)
	slugs := []string{articles[0].Slug, articles[1].Slug}
	assert.ElementsMatch(t, []string{"my-article", "cool-article"}, slugs)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &raw))
	for _, key := range []string{"title", "slug", "desc", "likes_count", "created_at", "updated_at"} {
		assert.Contains(t, raw[0], key)
	}

	rec, env = app.do(t, http.MethodGet, "/api/v1/articles/my-article", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Article details fetched successfully", env.Message)

	var article handler.ArticleResponse
	require.NoError(t, json.Unmarshal(env.Data, &article))
	assert.Equal(t, "My article", article.Title)
	assert.Equal(t, "This is my first article that I love", article.Description)
	assert.Zero(t, article.LikesCount)

	rec, env = app.do(t, http.MethodGet, "/api/v1/articles/does-not-exist", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "failure", env.Status)
	assert.Equal(t, "Article does not exist!", env.Message)
}

func TestToggleLike_AuthGate(t *testing.T) {
	app := newTestApp(t)

	unknownUserToken, err := app.tokens.GenerateToken(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		wantMessage   string
	}{
		{name: "missing header", authorization: "", wantMessage: "Unauthorized User!"},
		{name: "wrong scheme", authorization: "Token abc", wantMessage: "Unauthorized User!"},
		{name: "empty bearer", authorization: "Bearer ", wantMessage: "Unauthorized User!"},
		{name: "garbage token", authorization: "Bearer not-a-jwt", wantMessage: "Auth Token is Invalid or Expired"},
		{name: "unknown user", authorization: "Bearer " + unknownUserToken, wantMessage: "Auth Token is Invalid or Expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := app.do(t, http.MethodGet, "/api/v1/articles/my-article/like", nil, tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "failure", env.Status)
			assert.Equal(t, tt.wantMessage, env.Message)
		})
	}

	assert.Empty(t, app.publisher.Events())
}

func TestToggleLike(t *testing.T) {
	app := newTestApp(t)
	john := app.login(t, "johndoe@example.com", "johndoe")

	likesOf := func(slug string) int64 {
		_, env := app.do(t, http.MethodGet, "/api/v1/articles/"+slug, nil, "")

		var article handler.ArticleResponse
		require.NoError(t, json.Unmarshal(env.Data, &article))

		return article.LikesCount
	}

	rec, env := app.do(t, http.MethodGet, "/api/v1/articles/my-article/like", nil, john)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Like added successfully", env.Message)
	assert.Equal(t, int64(1), likesOf("my-article"))

	rec, env = app.do(t, http.MethodGet, "/api/v1/articles/my-article/like", nil, john)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Like removed successfully", env.Message)
	assert.Equal(t, int64(0), likesOf("my-article"))

	rec, env = app.do(t, http.MethodGet, "/api/v1/articles/nope/like", nil, john)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Article does not exist!", env.Message)

	events := app.publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].LikesCount)
	assert.Equal(t, int64(0), events[1].LikesCount)
}

func TestCreateArticle(t *testing.T) {
	app := newTestApp(t)
	jane := app.login(t, "janedoe@example.com", "janedoe")

	rec, env := app.do(t, http.MethodPost, "/api/v1/articles", map[string]string{
		"title": "My article",
		"desc":  "A second take",
	}, jane)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Article created successfully", env.Message)

	var article handler.ArticleResponse
	require.NoError(t, json.Unmarshal(env.Data, &article))
	assert.NotEqual(t, "my-article", article.Slug)
	assert.Regexp(t, `^my-article-\d+$`, article.Slug)

	rec, env = app.do(t, http.MethodPost, "/api/v1/articles", map[string]string{
		"title": "<b>Hello</b> World",
	}, jane)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &article))
	assert.Equal(t, "Hello World", article.Title)
	assert.Equal(t, "hello-world", article.Slug)

	rec, env = app.do(t, http.MethodPost, "/api/v1/articles", map[string]string{"desc": "no title"}, jane)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeFields(t, env.Data), "title")

	rec, env = app.do(t, http.MethodPost, "/api/v1/articles", map[string]string{"title": "Anonymous"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized User!", env.Message)
	assert.Len(t, app.store.Slugs(), 4)
}

func TestTopArticles(t *testing.T) {
	app := newTestApp(t)
	john := app.login(t, "johndoe@example.com", "johndoe")
	jane := app.login(t, "janedoe@example.com", "janedoe")

	for _, token := range []string{john, jane} {
		rec, _ := app.do(t, http.MethodGet, "/api/v1/articles/cool-article/like", nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec, _ := app.do(t, http.MethodGet, "/api/v1/articles/my-article/like", nil, john)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := app.do(t, http.MethodGet, "/api/v1/rankings/articles?top=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Article ranking fetched successfully", env.Message)

	articles := decodeArticles(t, env.Data)
	require.Len(t, articles, 2)
	assert.Equal(t, "cool-article", articles[0].Slug)
	assert.Equal(t, int64(2), articles[0].LikesCount)
	assert.Equal(t, "my-article", articles[1].Slug)

	_, env = app.do(t, http.MethodGet, "/api/v1/rankings/articles?top=1", nil, "")
	assert.Len(t, decodeArticles(t, env.Data), 1)

	for _, top := range []string{"0", "101", "abc"} {
		rec, env = app.do(t, http.MethodGet, "/api/v1/rankings/articles?top="+top, nil, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, top)
		assert.Contains(t, decodeFields(t, env.Data), "top")
	}
}

func TestShareQR(t *testing.T) {
	app := newTestApp(t)

	rec, _ := app.do(t, http.MethodGet, "/api/v1/articles/cool-article/qr", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec, env := app.do(t, http.MethodGet, "/api/v1/articles/missing/qr", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Article does not exist!", env.Message)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "johndoe@example.com", "johndoe")

	rec, _ := app.do(t, http.MethodGet, "/metrics", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `articlehub_logins_total{result="success"} 1`)
	assert.Contains(t, body, `articlehub_articles_created_total 2`)
	assert.Contains(t, body, `route="/api/v1/auth/login"`)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/api/v1/nothing-here", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "failure", env.Status)
	assert.Equal(t, "Not Found", env.Message)
}

func TestRequestIDPropagation(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/healthcheck", nil)
	req.Header.Set("X-Request-Id", "client-req-42")
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	assert.Equal(t, "client-req-42", rec.Header().Get("X-Request-Id"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/healthcheck", nil)
	req.Header.Set("X-Request-Id", "bad id\nwith newline")
	rec = httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	generated := rec.Header().Get("X-Request-Id")
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
