package usecase

import (
	"context"

	"articlehub/internal/domain/entity"
)

// CreateArticleInput defines the data required to publish an article.
type CreateArticleInput struct {
	Title       string
	Description string
}

// ArticleUsecase defines article read and publish operations.
type ArticleUsecase interface {
	List(ctx context.Context) ([]*entity.Article, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	Create(ctx context.Context, input *CreateArticleInput) (*entity.Article, error)

	// TopArticles returns up to limit articles ordered by like count.
	TopArticles(ctx context.Context, limit int) ([]*entity.Article, error)

	// ShareQRCode returns a PNG QR code pointing at the article.
	ShareQRCode(ctx context.Context, slug string) ([]byte, error)
}
