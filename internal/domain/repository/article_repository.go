package repository

import (
	"context"
	"errors"

	"articlehub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrArticleNotFound is returned when no article matches the lookup.
	ErrArticleNotFound = errors.New("article not found")

	// ErrDuplicateSlug is returned when an insert hits the slug uniqueness constraint.
	ErrDuplicateSlug = errors.New("slug already exists")
)

// ArticleRepository defines persistence operations for articles. Read methods
// populate LikesCount.
type ArticleRepository interface {
	// Create persists a new article. Returns ErrDuplicateSlug on slug conflict.
	Create(ctx context.Context, article *entity.Article) error

	// FindBySlug retrieves an article by slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Article, error)

	// List returns all articles, newest first.
	List(ctx context.Context) ([]*entity.Article, error)

	// FindByIDFromPrimary retrieves an article by id, bypassing read replicas
	// so the like count includes the latest commits.
	FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.Article, error)

	// ListByIDs returns the articles with the given ids, in no particular order.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Article, error)

	// TopByLikes returns up to limit articles ordered by like count, then recency.
	TopByLikes(ctx context.Context, limit int) ([]*entity.Article, error)

	// SlugExists reports whether any article uses slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// CountSlugsWithPrefix counts slugs beginning with prefix.
	CountSlugsWithPrefix(ctx context.Context, prefix string) (int64, error)

	// Count returns the number of stored articles.
	Count(ctx context.Context) (int64, error)
}
