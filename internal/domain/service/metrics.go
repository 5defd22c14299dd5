package service

// MetricsRecorder records domain counters. Implementations must be safe for
// concurrent use.
type MetricsRecorder interface {
	RecordLogin(success bool)
	RecordLikeToggle(action string)
	RecordArticleCreated()
	RecordSlugCollision()
	RecordEventPublishFailure()
}
