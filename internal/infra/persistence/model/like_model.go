package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. Both foreign keys cascade on delete and
// (user_id, article_id) is unique.
type LikeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_user_article_like,priority:1"`
	ArticleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_user_article_like,priority:2;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
