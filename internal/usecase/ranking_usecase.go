package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RankingUsecase keeps the like ranking aligned with stored like counts.
type RankingUsecase interface {
	// SyncArticle copies the article's stored like count into the ranking.
	// Replaying it is harmless, so events may arrive twice or out of order.
	SyncArticle(ctx context.Context, articleID uuid.UUID) error
}
