package service

import (
	"context"
	"time"
)

// LikeEvent is emitted after a like toggle commits.
type LikeEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	ArticleID  string    `json:"article_id"`
	Slug       string    `json:"slug"`
	LikesCount int64     `json:"likes_count"` // Count committed with the toggle
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLikeEvent publishes a like event for async consumers
	PublishLikeEvent(ctx context.Context, event *LikeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
