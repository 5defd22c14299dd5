package postgres

import (
	"context"

	"articlehub/internal/domain/entity"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/domain/repository"
	"articlehub/internal/errors"
	"articlehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const articleWithLikesSelect = "articles.*, " +
	"(SELECT COUNT(*) FROM likes WHERE likes.article_id = articles.id) AS likes_count"

// articleRepository implements the repository.ArticleRepository interface.
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository is the constructor for articleRepository.
func NewArticleRepository(db *gorm.DB) repository.ArticleRepository {
	return &articleRepository{
		db: db,
	}
}

func (repo *articleRepository) withLikes(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ArticleModel{}).
		Select(articleWithLikesSelect)
}

// Create persists a new article. A slug conflict surfaces as ErrDuplicateSlug.
func (repo *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	articleM := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Create(articleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required article information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create article")
	}

	article.CreatedAt = articleM.CreatedAt
	article.UpdatedAt = articleM.UpdatedAt

	return nil
}

// FindBySlug retrieves an article with its like count.
func (repo *articleRepository) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var articleM model.ArticleModel

	if err := repo.withLikes(ctx).
		Where("articles.slug = ?", slug).
		Take(&articleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by slug")
	}

	return toArticleDomain(&articleM), nil
}

// FindByIDFromPrimary reads from the primary; replicas may lag behind a like
// that was just committed.
func (repo *articleRepository) FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	var articleM model.ArticleModel

	if err := repo.withLikes(ctx).
		Clauses(dbresolver.Write).
		Where("articles.id = ?", id).
		Take(&articleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by id")
	}

	return toArticleDomain(&articleM), nil
}

// List returns every article, newest first.
func (repo *articleRepository) List(ctx context.Context) ([]*entity.Article, error) {
	var articleModels []*model.ArticleModel

	if err := repo.withLikes(ctx).
		Order("articles.created_at DESC").
		Find(&articleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list articles")
	}

	return toArticleDomains(articleModels), nil
}

// ListByIDs returns the articles matching ids.
func (repo *articleRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Article, error) {
	if len(ids) == 0 {
		return []*entity.Article{}, nil
	}

	var articleModels []*model.ArticleModel
	if err := repo.withLikes(ctx).
		Where("articles.id IN ?", ids).
		Find(&articleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list articles by ids")
	}

	return toArticleDomains(articleModels), nil
}

// TopByLikes ranks articles by like count from the database.
func (repo *articleRepository) TopByLikes(ctx context.Context, limit int) ([]*entity.Article, error) {
	var articleModels []*model.ArticleModel

	if err := repo.withLikes(ctx).
		Order("likes_count DESC").
		Order("articles.created_at DESC").
		Limit(limit).
		Find(&articleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank articles")
	}

	return toArticleDomains(articleModels), nil
}

// SlugExists checks the primary so slugs reserved by just-committed articles are seen.
func (repo *articleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ArticleModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check slug")
	}

	return count > 0, nil
}

// CountSlugsWithPrefix counts slugs starting with prefix. Slugs never contain
// LIKE wildcards.
func (repo *articleRepository) CountSlugsWithPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ArticleModel{}).
		Where("slug LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count slugs")
	}

	return count, nil
}

// Count returns the number of articles.
func (repo *articleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ArticleModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count articles")
	}

	return count, nil
}

func toArticleDomain(articleM *model.ArticleModel) *entity.Article {
	return &entity.Article{
		ID:          articleM.ID,
		Title:       articleM.Title,
		Slug:        articleM.Slug,
		Description: articleM.Description,
		LikesCount:  articleM.LikesCount,
		CreatedAt:   articleM.CreatedAt,
		UpdatedAt:   articleM.UpdatedAt,
	}
}

func toArticleDomains(articleModels []*model.ArticleModel) []*entity.Article {
	articles := make([]*entity.Article, 0, len(articleModels))
	for _, articleM := range articleModels {
		articles = append(articles, toArticleDomain(articleM))
	}

	return articles
}

func fromArticleDomain(article *entity.Article) *model.ArticleModel {
	return &model.ArticleModel{
		ID:          article.ID,
		Title:       article.Title,
		Slug:        article.Slug,
		Description: article.Description,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}
