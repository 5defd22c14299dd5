package usecase

import (
	"context"

	"articlehub/internal/domain/entity"

	"github.com/google/uuid"
)

// LikeUsecase defines like operations.
type LikeUsecase interface {
	// ToggleLike flips whether userID likes the article identified by slug.
	ToggleLike(ctx context.Context, userID uuid.UUID, slug string) (entity.LikeAction, error)
}
