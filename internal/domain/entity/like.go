package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like records that a user likes an article. At most one Like exists per
// (UserID, ArticleID) pair.
type Like struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ArticleID uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLike builds a like with a fresh identifier.
func NewLike(userID, articleID uuid.UUID) *Like {
	return &Like{
		ID:        uuid.New(),
		UserID:    userID,
		ArticleID: articleID,
	}
}

// LikeAction is the outcome of toggling a like.
type LikeAction string

const (
	LikeAdded   LikeAction = "added"
	LikeRemoved LikeAction = "removed"
)

// Delta is the change in the article's like count caused by the action.
func (a LikeAction) Delta() int64 {
	if a == LikeAdded {
		return 1
	}

	return -1
}
