package service

import (
	"context"

	"github.com/google/uuid"
)

// RankedArticle is a ranking entry.
type RankedArticle struct {
	ArticleID uuid.UUID
	Likes     int64
}

// LikeRanking keeps articles ordered by like count.
type LikeRanking interface {
	// Adjust moves the article's score by delta.
	Adjust(ctx context.Context, articleID uuid.UUID, delta int64) error

	// Top returns up to limit entries, highest score first. ok is false when the
	// ranking has no data of its own and callers should fall back to the store.
	Top(ctx context.Context, limit int) (entries []RankedArticle, ok bool, err error)

	// Set overwrites the article's score.
	Set(ctx context.Context, articleID uuid.UUID, likes int64) error

	// Reset replaces the whole ranking with scores.
	Reset(ctx context.Context, scores []RankedArticle) error
}
