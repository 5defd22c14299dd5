// Package cache keeps derived read models outside the primary database.
package cache

import (
	"context"
	"log/slog"

	"articlehub/config"
	"articlehub/internal/domain/repository"
	"articlehub/internal/domain/service"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRankingKey = "rank:article:likes"

// databaseRanking is used when no cache is configured. Top always reports a
// miss so callers rank from the database.
type databaseRanking struct{}

func (databaseRanking) Adjust(context.Context, uuid.UUID, int64) error { return nil }

func (databaseRanking) Top(context.Context, int) ([]service.RankedArticle, bool, error) {
	return nil, false, nil
}

func (databaseRanking) Set(context.Context, uuid.UUID, int64) error { return nil }

func (databaseRanking) Reset(context.Context, []service.RankedArticle) error { return nil }

// RankingParams holds dependencies for LikeRanking, injected by Fx
type RankingParams struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	ArticleRepo repository.ArticleRepository
	Logger      *slog.Logger
}

// NewLikeRanking returns a redis backed ranking when redis.addr is set and a
// database fallback otherwise. The redis ranking is rebuilt from the database
// on start.
func NewLikeRanking(params RankingParams) service.LikeRanking {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, ranking articles from the database")

		return databaseRanking{}
	}

	key := cfg.RankingKey
	if key == "" {
		key = defaultRankingKey
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ranking := NewRedisLikeRanking(client, key)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.WithContext(ctx).Ping().Err(); err != nil {
				return errors.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
			}

			if err := WarmRanking(ctx, ranking, params.ArticleRepo); err != nil {
				// A cold ranking falls back to the database, so start anyway.
				logger.Warn("Failed to warm like ranking", slog.Any("error", err))

				return nil
			}
			logger.Info("Like ranking warmed", slog.String("key", key))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing redis client")

			return errors.WithStack(client.Close())
		},
	})

	return ranking
}

// WarmRanking replaces the ranking with the like counts currently stored.
func WarmRanking(ctx context.Context, ranking service.LikeRanking, articleRepo repository.ArticleRepository) error {
	articles, err := articleRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list articles")
	}

	scores := make([]service.RankedArticle, 0, len(articles))
	for _, article := range articles {
		scores = append(scores, service.RankedArticle{ArticleID: article.ID, Likes: article.LikesCount})
	}

	return ranking.Reset(ctx, scores)
}

// Module provides the like ranking FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLikeRanking),
)
