package impl

import (
	"context"
	"testing"

	"articlehub/internal/domain/entity"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/domain/service"
	mockRepo "articlehub/internal/mocks/repository"
	mockSvc "articlehub/internal/mocks/service"
	"articlehub/internal/testutil"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRankingService_SyncArticle_CopiesStoredCount(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	article := store.AddArticle("Synced", "synced")
	for range 3 {
		require.NoError(t, store.LikeRepo().Create(ctx, entity.NewLike(uuid.New(), article.ID)))
	}
	ranking := testutil.NewRanking()
	require.NoError(t, ranking.Reset(ctx, []service.RankedArticle{{ArticleID: article.ID, Likes: 7}}))

	svc := NewRankingService(RankingServiceParams{
		ArticleRepo: store.ArticleRepo(),
		Ranking:     ranking,
		Logger:      newDiscardLogger(),
	})

	require.NoError(t, svc.SyncArticle(ctx, article.ID))
	assert.Equal(t, int64(3), ranking.Score(article.ID))

	// Replays converge on the same score.
	require.NoError(t, svc.SyncArticle(ctx, article.ID))
	assert.Equal(t, int64(3), ranking.Score(article.ID))
}

func TestRankingService_SyncArticle_ColdRankingStaysMiss(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	article := store.AddArticle("Synced", "synced")
	ranking := testutil.NewRanking()

	svc := NewRankingService(RankingServiceParams{
		ArticleRepo: store.ArticleRepo(),
		Ranking:     ranking,
		Logger:      newDiscardLogger(),
	})

	require.NoError(t, svc.SyncArticle(ctx, article.ID))

	_, ok, err := ranking.Top(ctx, 10)
	require.NoError(t, err)
	assert.False(t, ok, "a single synced article must not look like a full ranking")
}

func TestRankingService_SyncArticle_ReadsFromPrimary(t *testing.T) {
	ctx := context.Background()
	articleID := uuid.New()
	articleRepo := mockRepo.NewMockArticleRepository(t)
	ranking := mockSvc.NewMockLikeRanking(t)

	// ListByIDs may be served by a lagging replica and must not be used.
	articleRepo.EXPECT().
		FindByIDFromPrimary(ctx, articleID).
		Return(&entity.Article{ID: articleID, LikesCount: 5}, nil)
	ranking.EXPECT().Set(ctx, articleID, int64(5)).Return(nil)

	svc := NewRankingService(RankingServiceParams{
		ArticleRepo: articleRepo,
		Ranking:     ranking,
		Logger:      newDiscardLogger(),
	})

	require.NoError(t, svc.SyncArticle(ctx, articleID))
}

func TestRankingService_SyncArticle_UnknownArticle(t *testing.T) {
	svc := NewRankingService(RankingServiceParams{
		ArticleRepo: testutil.NewStore().ArticleRepo(),
		Ranking:     testutil.NewRanking(),
		Logger:      newDiscardLogger(),
	})

	err := svc.SyncArticle(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrArticleNotFound))
}

func TestRankingService_SyncArticle_Failures(t *testing.T) {
	t.Run("store", func(t *testing.T) {
		articleRepo := mockRepo.NewMockArticleRepository(t)
		articleRepo.EXPECT().FindByIDFromPrimary(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		svc := NewRankingService(RankingServiceParams{
			ArticleRepo: articleRepo,
			Ranking:     testutil.NewRanking(),
			Logger:      newDiscardLogger(),
		})

		err := svc.SyncArticle(context.Background(), uuid.New())
		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrArticleNotFound))
	})

	t.Run("ranking", func(t *testing.T) {
		store := testutil.NewStore()
		article := store.AddArticle("Synced", "synced")
		ranking := testutil.NewRanking()
		ranking.Err = errors.New("redis down")

		svc := NewRankingService(RankingServiceParams{
			ArticleRepo: store.ArticleRepo(),
			Ranking:     ranking,
			Logger:      newDiscardLogger(),
		})

		assert.Error(t, svc.SyncArticle(context.Background(), article.ID))
	})
}
