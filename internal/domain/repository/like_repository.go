package repository

import (
	"context"
	"errors"

	"articlehub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrLikeNotFound is returned when the user has not liked the article.
	ErrLikeNotFound = errors.New("like not found")

	// ErrDuplicateLike is returned when an insert hits unique_user_article_like.
	ErrDuplicateLike = errors.New("like already exists")
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	// FindByUserAndArticle returns the like for the pair and locks it for the
	// rest of the enclosing transaction.
	FindByUserAndArticle(ctx context.Context, userID, articleID uuid.UUID) (*entity.Like, error)

	// Create persists a new like. Returns ErrDuplicateLike on pair conflict.
	Create(ctx context.Context, like *entity.Like) error

	// Delete removes a like by id. Returns ErrLikeNotFound if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByArticle returns the number of likes on an article.
	CountByArticle(ctx context.Context, articleID uuid.UUID) (int64, error)
}
