package model

import (
	"time"

	"github.com/google/uuid"
)

// ArticleModel mirrors the 'articles' table. LikesCount is read-only and only
// populated by queries that select it.
type ArticleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(500);not null"`
	Slug        string    `gorm:"type:text;uniqueIndex:articles_slug_key;not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	LikesCount int64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (ArticleModel) TableName() string {
	return "articles"
}
