package impl

import (
	"io"
	"log/slog"

	"articlehub/config"
	"articlehub/internal/domain/service"
	"articlehub/internal/infra/auth"
	"articlehub/internal/testutil"

	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(randomAttempts, fallbackAttempts, createRetries int) *config.Config {
	return &config.Config{
		Article: &config.ArticleConfig{
			SlugRandomAttempts:   randomAttempts,
			SlugFallbackAttempts: fallbackAttempts,
			CreateRetries:        createRetries,
		},
	}
}

func newTestHasher() service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(bcrypt.MinCost)
}

// articleFixtures wires an articleService to an in-memory store.
type articleFixtures struct {
	service *articleService
	store   *testutil.Store
	ranking *testutil.Ranking
	metrics *testutil.Metrics
}

func newArticleFixtures(cfg *config.Config, qr service.QRCodeService) articleFixtures {
	store := testutil.NewStore()
	ranking := testutil.NewRanking()
	metrics := testutil.NewMetrics()

	svc := NewArticleService(ArticleServiceParams{
		TxManager:   store,
		ArticleRepo: store.ArticleRepo(),
		Sanitizer:   testutil.PlainSanitizer{},
		Ranking:     ranking,
		QRCode:      qr,
		Metrics:     metrics,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return articleFixtures{
		service: svc.(*articleService),
		store:   store,
		ranking: ranking,
		metrics: metrics,
	}
}
