package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "articlehub/internal/delivery/context"
	"articlehub/internal/domain/constants"
	"articlehub/internal/domain/entity"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/domain/repository"
	"articlehub/internal/domain/service"
	"articlehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type likeService struct {
	txManager   repository.TransactionManager
	articleRepo repository.ArticleRepository
	ranking     service.LikeRanking
	publisher   service.EventPublisher
	metrics     service.MetricsRecorder
	now         func() time.Time
	logger      *slog.Logger
}

// LikeServiceParams holds dependencies for LikeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ArticleRepo repository.ArticleRepository
	Ranking     service.LikeRanking
	Publisher   service.EventPublisher
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		txManager:   params.TxManager,
		articleRepo: params.ArticleRepo,
		ranking:     params.Ranking,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type toggleResult struct {
	action     entity.LikeAction
	likesCount int64
}

// ToggleLike adds the like when absent and removes it when present. Two
// concurrent adds for the same pair race on unique_user_article_like; the
// loser retries once, finds the winner's row and removes it.
func (srv *likeService) ToggleLike(ctx context.Context, userID uuid.UUID, slug string) (entity.LikeAction, error) {
	article, err := srv.articleRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrArticleNotFound) {
		return "", domainerrors.ErrArticleNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to find article")
	}

	result, err := srv.toggle(ctx, userID, article.ID)
	if errors.Is(err, repository.ErrDuplicateLike) {
		srv.log(ctx).Info("Concurrent like detected, retrying toggle",
			slog.Any("userID", userID),
			slog.String("slug", slug),
		)
		result, err = srv.toggle(ctx, userID, article.ID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return "", domainerrors.ErrArticleNotFound
		}

		return "", errors.Wrap(err, "failed to toggle like")
	}

	srv.afterToggle(ctx, userID, article, result)

	return result.action, nil
}

func (srv *likeService) toggle(ctx context.Context, userID, articleID uuid.UUID) (*toggleResult, error) {
	result := &toggleResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		likeRepo := repoFactory.LikeRepo()

		existing, err := likeRepo.FindByUserAndArticle(ctx, userID, articleID)
		switch {
		case err == nil:
			if err := likeRepo.Delete(ctx, existing.ID); err != nil {
				return errors.Wrap(err, "failed to delete like")
			}
			result.action = entity.LikeRemoved

		case errors.Is(err, repository.ErrLikeNotFound):
			if err := likeRepo.Create(ctx, entity.NewLike(userID, articleID)); err != nil {
				return errors.Wrap(err, "failed to create like")
			}
			result.action = entity.LikeAdded

		default:
			return errors.Wrap(err, "failed to find like")
		}

		count, err := likeRepo.CountByArticle(ctx, articleID)
		if err != nil {
			return errors.Wrap(err, "failed to count likes")
		}
		result.likesCount = count

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// afterToggle runs the post-commit side effects. They never fail the request.
func (srv *likeService) afterToggle(ctx context.Context, userID uuid.UUID, article *entity.Article, result *toggleResult) {
	srv.metrics.RecordLikeToggle(string(result.action))

	if err := srv.ranking.Adjust(ctx, article.ID, result.action.Delta()); err != nil {
		srv.log(ctx).Warn("Failed to adjust like ranking",
			slog.Any("articleID", article.ID),
			slog.Any("error", err),
		)
	}

	eventType := constants.EventTypeLikeAdded
	if result.action == entity.LikeRemoved {
		eventType = constants.EventTypeLikeRemoved
	}

	event := &service.LikeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID.String(),
		ArticleID:  article.ID.String(),
		Slug:       article.Slug,
		LikesCount: result.likesCount,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishLikeEvent(ctx, event); err != nil {
		srv.metrics.RecordEventPublishFailure()
		srv.log(ctx).Warn("Failed to publish like event",
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)
	}
}
