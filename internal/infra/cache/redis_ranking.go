package cache

import (
	"context"

	"articlehub/internal/domain/service"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Scores are only written into an existing set. Writing into a missing key
// would create a partial ranking that Top reports as a hit; leaving it absent
// keeps Top a miss until the set is rebuilt from the database.
var (
	incrIfExists = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
redis.call("ZINCRBY", KEYS[1], ARGV[1], ARGV[2])
return 1
`)

	setIfExists = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
redis.call("ZADD", KEYS[1], ARGV[1], ARGV[2])
return 1
`)
)

// redisLikeRanking stores like counts in a sorted set keyed by article id.
type redisLikeRanking struct {
	client *redis.Client
	key    string
}

// NewRedisLikeRanking returns a ranking stored under key.
func NewRedisLikeRanking(client *redis.Client, key string) service.LikeRanking {
	return &redisLikeRanking{client: client, key: key}
}

func (r *redisLikeRanking) Adjust(ctx context.Context, articleID uuid.UUID, delta int64) error {
	err := incrIfExists.Run(r.client.WithContext(ctx), []string{r.key}, delta, articleID.String()).Err()

	return errors.Wrap(err, "zincrby")
}

func (r *redisLikeRanking) Set(ctx context.Context, articleID uuid.UUID, likes int64) error {
	err := setIfExists.Run(r.client.WithContext(ctx), []string{r.key}, likes, articleID.String()).Err()

	return errors.Wrap(err, "zadd")
}

// Top reports a miss when the sorted set does not exist yet.
func (r *redisLikeRanking) Top(ctx context.Context, limit int) ([]service.RankedArticle, bool, error) {
	client := r.client.WithContext(ctx)

	exists, err := client.Exists(r.key).Result()
	if err != nil {
		return nil, false, errors.Wrap(err, "exists")
	}
	if exists == 0 {
		return nil, false, nil
	}

	members, err := client.ZRevRangeWithScores(r.key, 0, int64(limit-1)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, false, errors.Wrap(err, "zrevrange")
	}

	entries := make([]service.RankedArticle, 0, len(members))
	for _, member := range members {
		raw, _ := member.Member.(string)
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		entries = append(entries, service.RankedArticle{ArticleID: id, Likes: int64(member.Score)})
	}

	return entries, true, nil
}

// Reset swaps the whole set atomically. Redis drops empty sorted sets, so
// resetting to no scores leaves Top reporting a miss.
func (r *redisLikeRanking) Reset(ctx context.Context, scores []service.RankedArticle) error {
	pipe := r.client.WithContext(ctx).TxPipeline()
	pipe.Del(r.key)

	if len(scores) > 0 {
		members := make([]redis.Z, 0, len(scores))
		for _, entry := range scores {
			members = append(members, redis.Z{Score: float64(entry.Likes), Member: entry.ArticleID.String()})
		}
		pipe.ZAdd(r.key, members...)
	}

	if _, err := pipe.Exec(); err != nil {
		return errors.Wrap(err, "reset ranking")
	}

	return nil
}
