package entity

import (
	"time"

	"github.com/google/uuid"
)

// Article is a published piece of content addressed by its slug.
// The slug is assigned once at creation and never changes afterwards.
type Article struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Description string
	LikesCount  int64 // Derived from the likes relation, zero on freshly created articles.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewArticle builds an article without a slug; the slug is allocated inside the
// creation transaction.
func NewArticle(title, description string) *Article {
	return &Article{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
	}
}
