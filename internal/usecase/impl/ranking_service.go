package impl

import (
	"context"
	"log/slog"

	deliverycontext "articlehub/internal/delivery/context"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/domain/repository"
	"articlehub/internal/domain/service"
	"articlehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type rankingService struct {
	articleRepo repository.ArticleRepository
	ranking     service.LikeRanking
	logger      *slog.Logger
}

// RankingServiceParams holds dependencies for RankingService, injected by Fx.
type RankingServiceParams struct {
	fx.In

	ArticleRepo repository.ArticleRepository
	Ranking     service.LikeRanking
	Logger      *slog.Logger
}

// NewRankingService is the constructor for rankingService.
func NewRankingService(params RankingServiceParams) usecase.RankingUsecase {
	return &rankingService{
		articleRepo: params.ArticleRepo,
		ranking:     params.Ranking,
		logger:      params.Logger,
	}
}

func (srv *rankingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncArticle overwrites the article's score with its stored like count.
func (srv *rankingService) SyncArticle(ctx context.Context, articleID uuid.UUID) error {
	article, err := srv.articleRepo.FindByIDFromPrimary(ctx, articleID)
	if errors.Is(err, repository.ErrArticleNotFound) {
		return domainerrors.ErrArticleNotFound.WrapMessage(articleID.String())
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load article for ranking")
	}

	likes := article.LikesCount
	if err := srv.ranking.Set(ctx, articleID, likes); err != nil {
		return errors.Wrap(err, "failed to update ranking")
	}

	srv.log(ctx).Debug("Ranking synced",
		slog.String("article_id", articleID.String()),
		slog.Int64("likes", likes),
	)

	return nil
}
