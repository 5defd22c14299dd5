package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"articlehub/internal/domain/entity"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/domain/repository"
	"articlehub/internal/domain/service"
	mockSvc "articlehub/internal/mocks/service"
	"articlehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleService_Create_AssignsSlug(t *testing.T) {
	fx := newArticleFixtures(newTestConfig(10, 100, 3), nil)
	ctx := context.Background()

	first, err := fx.service.Create(ctx, &usecase.CreateArticleInput{Title: "My article", Description: "first"})
	require.NoError(t, err)
	assert.Equal(t, "my-article", first.Slug)

	second, err := fx.service.Create(ctx, &usecase.CreateArticleInput{Title: "My article", Description: "second"})
	require.NoError(t, err)
	assert.Regexp(t, `^my-article-[1-9][0-9]{5}$`, second.Slug)

	assert.Equal(t, 2, fx.metrics.Snapshot().ArticlesCreated)
}

func TestArticleService_Create_SanitisesInput(t *testing.T) {
	fx := newArticleFixtures(nil, nil)
	sanitizer := mockSvc.NewMockContentSanitizer(t)
	sanitizer.EXPECT().PlainText("<b>Hello</b> world").Return("Hello world")
	sanitizer.EXPECT().RichText("<script>x</script><p>ok</p>").Return("<p>ok</p>")
	fx.service.sanitizer = sanitizer

	article, err := fx.service.Create(context.Background(), &usecase.CreateArticleInput{
		Title:       "<b>Hello</b> world",
		Description: "<script>x</script><p>ok</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello world", article.Title)
	assert.Equal(t, "hello-world", article.Slug)
	assert.Equal(t, "<p>ok</p>", article.Description)
}

func TestArticleService_Create_RejectsEmptyTitle(t *testing.T) {
	fx := newArticleFixtures(nil, nil)

	_, err := fx.service.Create(context.Background(), &usecase.CreateArticleInput{Title: "   "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, fx.store.Slugs())
}

func TestArticleService_Create_RetriesOnConcurrentSlugConflict(t *testing.T) {
	fx := newArticleFixtures(newTestConfig(10, 100, 3), nil)
	conflicts := 2
	fx.store.BeforeArticleInsert = func(*entity.Article) error {
		if conflicts > 0 {
			conflicts--

			return repository.ErrDuplicateSlug
		}

		return nil
	}

	article, err := fx.service.Create(context.Background(), &usecase.CreateArticleInput{Title: "My article"})

	require.NoError(t, err)
	assert.Equal(t, "my-article", article.Slug)
	assert.Equal(t, []string{"my-article"}, fx.store.Slugs())
	assert.Equal(t, 2, fx.metrics.Snapshot().SlugCollisions)
}

func TestArticleService_Create_GivesUpAfterRetries(t *testing.T) {
	fx := newArticleFixtures(newTestConfig(10, 100, 2), nil)
	attempts := 0
	fx.store.BeforeArticleInsert = func(*entity.Article) error {
		attempts++

		return repository.ErrDuplicateSlug
	}

	_, err := fx.service.Create(context.Background(), &usecase.CreateArticleInput{Title: "My article"})

	assert.ErrorIs(t, err, domainerrors.ErrSlugExhausted)
	assert.NotErrorIs(t, err, repository.ErrDuplicateSlug)
	assert.Equal(t, 3, attempts)
	assert.Empty(t, fx.store.Slugs())
}

func TestArticleService_Create_StoreFailureIsNotRetried(t *testing.T) {
	fx := newArticleFixtures(nil, nil)
	dbErr := errors.New("disk full")
	attempts := 0
	fx.store.BeforeArticleInsert = func(*entity.Article) error {
		attempts++

		return dbErr
	}

	_, err := fx.service.Create(context.Background(), &usecase.CreateArticleInput{Title: "My article"})

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 1, attempts)
}

func TestArticleService_Create_ConcurrentSameTitleYieldsUniqueSlugs(t *testing.T) {
	fx := newArticleFixtures(newTestConfig(10, 100, 3), nil)
	const writers = 25

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.Create(context.Background(), &usecase.CreateArticleInput{Title: "Same title"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	slugs := fx.store.Slugs()
	require.Len(t, slugs, writers)
	seen := make(map[string]struct{}, writers)
	for _, slug := range slugs {
		assert.Regexp(t, `^same-title(-[0-9]+)?$`, slug)
		_, dup := seen[slug]
		assert.False(t, dup, "slug %s allocated twice", slug)
		seen[slug] = struct{}{}
	}
	assert.Contains(t, seen, "same-title")
}

func TestArticleService_GetBySlug(t *testing.T) {
	fx := newArticleFixtures(nil, nil)
	stored := fx.store.AddArticle("Cool article", "cool-article")

	article, err := fx.service.GetBySlug(context.Background(), "cool-article")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, article.ID)

	_, err = fx.service.GetBySlug(context.Background(), "test-article")
	assert.Equal(t, domainerrors.ErrArticleNotFound, err)
}

func TestArticleService_List_NewestFirst(t *testing.T) {
	fx := newArticleFixtures(nil, nil)
	fx.store.AddArticle("My article", "my-article")
	fx.store.AddArticle("Cool article", "cool-article")

	articles, err := fx.service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "cool-article", articles[0].Slug)
	assert.Equal(t, "my-article", articles[1].Slug)
}

func TestArticleService_TopArticles_FallsBackToStoreWhenRankingCold(t *testing.T) {
	fx := newArticleFixtures(nil, nil)
	ctx := context.Background()
	quiet := fx.store.AddArticle("Quiet", "quiet")
	popular := fx.store.AddArticle("Popular", "popular")
	for range 3 {
		require.NoError(t, fx.store.LikeRepo().Create(ctx, entity.NewLike(uuid.New(), popular.ID)))
	}

	articles, err := fx.service.TopArticles(ctx, 5)

	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, popular.ID, articles[0].ID)
	assert.Equal(t, int64(3), articles[0].LikesCount)
	assert.Equal(t, quiet.ID, articles[1].ID)
}

func TestArticleService_TopArticles_UsesRankingOrder(t *testing.T) {
	fx := newArticleFixtures(nil, nil)
	ctx := context.Background()
	first := fx.store.AddArticle("First", "first")
	second := fx.store.AddArticle("Second", "second")
	deleted := uuid.New()

	require.NoError(t, fx.ranking.Reset(ctx, []service.RankedArticle{
		{ArticleID: first.ID, Likes: 1},
		{ArticleID: second.ID, Likes: 7},
		{ArticleID: deleted, Likes: 9},
	}))

	articles, err := fx.service.TopArticles(ctx, 3)

	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, second.ID, articles[0].ID)
	assert.Equal(t, first.ID, articles[1].ID)
}

func TestArticleService_TopArticles_RankingErrorFallsBack(t *testing.T) {
	fx := newArticleFixtures(nil, nil)
	fx.store.AddArticle("Only", "only")
	fx.ranking.Err = errors.New("redis: connection refused")

	articles, err := fx.service.TopArticles(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "only", articles[0].Slug)
}

func TestArticleService_TopArticles_InvalidLimit(t *testing.T) {
	fx := newArticleFixtures(nil, nil)

	for _, limit := range []int{0, -1} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			_, err := fx.service.TopArticles(context.Background(), limit)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestArticleService_ShareQRCode(t *testing.T) {
	qr := mockSvc.NewMockQRCodeService(t)
	fx := newArticleFixtures(nil, qr)
	fx.store.AddArticle("My article", "my-article")
	qr.EXPECT().GenerateArticleQR("my-article").Return([]byte("png"), nil)

	png, err := fx.service.ShareQRCode(context.Background(), "my-article")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.ShareQRCode(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrArticleNotFound)
}
