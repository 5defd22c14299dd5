package impl

import (
	"context"
	"log/slog"
	"strings"

	"articlehub/config"
	deliverycontext "articlehub/internal/delivery/context"
	"articlehub/internal/domain/entity"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/domain/repository"
	"articlehub/internal/domain/service"
	"articlehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSlugRandomAttempts   = 10
	defaultSlugFallbackAttempts = 100
	defaultCreateRetries        = 3
)

type articleService struct {
	txManager     repository.TransactionManager
	articleRepo   repository.ArticleRepository
	sanitizer     service.ContentSanitizer
	ranking       service.LikeRanking
	qrCode        service.QRCodeService
	metrics       service.MetricsRecorder
	slugs         *slugGenerator
	createRetries int
	logger        *slog.Logger
}

// ArticleServiceParams holds dependencies for ArticleService, injected by Fx.
type ArticleServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ArticleRepo repository.ArticleRepository
	Sanitizer   service.ContentSanitizer
	Ranking     service.LikeRanking
	QRCode      service.QRCodeService
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewArticleService is the constructor for articleService.
func NewArticleService(params ArticleServiceParams) usecase.ArticleUsecase {
	randomAttempts := defaultSlugRandomAttempts
	fallbackAttempts := defaultSlugFallbackAttempts
	createRetries := defaultCreateRetries
	if params.Config != nil && params.Config.Article != nil {
		cfg := params.Config.Article
		if cfg.SlugRandomAttempts > 0 {
			randomAttempts = cfg.SlugRandomAttempts
		}
		if cfg.SlugFallbackAttempts > 0 {
			fallbackAttempts = cfg.SlugFallbackAttempts
		}
		if cfg.CreateRetries > 0 {
			createRetries = cfg.CreateRetries
		}
	}

	return &articleService{
		txManager:     params.TxManager,
		articleRepo:   params.ArticleRepo,
		sanitizer:     params.Sanitizer,
		ranking:       params.Ranking,
		qrCode:        params.QRCode,
		metrics:       params.Metrics,
		slugs:         newSlugGenerator(randomAttempts, fallbackAttempts),
		createRetries: createRetries,
		logger:        params.Logger,
	}
}

func (srv *articleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *articleService) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := srv.articleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list articles")
	}

	return articles, nil
}

func (srv *articleService) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := srv.articleRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrArticleNotFound) {
		return nil, domainerrors.ErrArticleNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find article")
	}

	return article, nil
}

// Create sanitises the input, allocates a slug and inserts the article in one
// transaction. A slug taken by a concurrent insert between the check and the
// insert restarts the transaction with a fresh slug.
func (srv *articleService) Create(ctx context.Context, input *usecase.CreateArticleInput) (*entity.Article, error) {
	title := strings.TrimSpace(srv.sanitizer.PlainText(input.Title))
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is empty after sanitising")
	}
	description := strings.TrimSpace(srv.sanitizer.RichText(input.Description))

	for attempt := 0; ; attempt++ {
		article := entity.NewArticle(title, description)

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			articleRepo := repoFactory.ArticleRepo()

			slug, err := srv.slugs.Generate(ctx, articleRepo, title)
			if err != nil {
				return err
			}
			article.Slug = slug

			return articleRepo.Create(ctx, article)
		})
		if err == nil {
			srv.metrics.RecordArticleCreated()
			srv.log(ctx).Info("Article created", slog.String("slug", article.Slug), slog.Int("attempt", attempt+1))

			return article, nil
		}

		if !errors.Is(err, repository.ErrDuplicateSlug) {
			if errors.Is(err, domainerrors.ErrSlugExhausted) {
				return nil, err
			}

			return nil, errors.Wrap(err, "failed to create article")
		}

		srv.metrics.RecordSlugCollision()
		srv.log(ctx).Warn("Slug taken concurrently, retrying",
			slog.String("slug", article.Slug),
			slog.Int("attempt", attempt+1),
		)

		if attempt >= srv.createRetries {
			return nil, domainerrors.ErrSlugExhausted.WithDetails("slug conflicts exceeded retries: " + article.Slug)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(ctxErr, "article creation cancelled")
		}
	}
}

// TopArticles prefers the ranking cache and falls back to counting likes in
// the store when the cache has nothing or fails.
func (srv *articleService) TopArticles(ctx context.Context, limit int) ([]*entity.Article, error) {
	if limit < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit must be positive")
	}

	entries, ok, err := srv.ranking.Top(ctx, limit)
	if err != nil {
		srv.log(ctx).Warn("Like ranking unavailable, using database", slog.Any("error", err))
		ok = false
	}

	if !ok {
		articles, err := srv.articleRepo.TopByLikes(ctx, limit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to rank articles")
		}

		return articles, nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ArticleID)
	}

	articles, err := srv.articleRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ranked articles")
	}

	byID := make(map[uuid.UUID]*entity.Article, len(articles))
	for _, article := range articles {
		byID[article.ID] = article
	}

	// Keep ranking order; ids whose article has since been deleted are skipped.
	ranked := make([]*entity.Article, 0, len(articles))
	for _, id := range ids {
		if article, found := byID[id]; found {
			ranked = append(ranked, article)
		}
	}

	return ranked, nil
}

func (srv *articleService) ShareQRCode(ctx context.Context, slug string) ([]byte, error) {
	article, err := srv.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateArticleQR(article.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}
