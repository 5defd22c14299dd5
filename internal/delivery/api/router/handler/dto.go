package handler

import (
	"time"

	"articlehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ArticleResponse is the wire shape of an article.
type ArticleResponse struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"desc"`
	LikesCount  int64     `json:"likes_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newArticleResponse(article *entity.Article) ArticleResponse {
	return ArticleResponse{
		Title:       article.Title,
		Slug:        article.Slug,
		Description: article.Description,
		LikesCount:  article.LikesCount,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}

func newArticleListResponse(articles []*entity.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, article := range articles {
		out = append(out, newArticleResponse(article))
	}

	return out
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// TokenResponse is the login payload.
type TokenResponse struct {
	Token string `json:"token"`
}
