package testutil

import (
	"context"
	"maps"
	"slices"
	"sync"

	"articlehub/internal/domain/service"

	"github.com/google/uuid"
)

// Ranking is an in-memory LikeRanking. Like a cold cache it reports ok=false
// from Top until Reset loads scores, and ignores Adjust and Set until then.
type Ranking struct {
	mu     sync.Mutex
	scores map[uuid.UUID]int64
	warm   bool
	Err    error
}

func NewRanking() *Ranking {
	return &Ranking{scores: make(map[uuid.UUID]int64)}
}

func (r *Ranking) Adjust(_ context.Context, articleID uuid.UUID, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	if r.warm {
		r.scores[articleID] += delta
	}

	return nil
}

func (r *Ranking) Top(_ context.Context, limit int) ([]service.RankedArticle, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, false, r.Err
	}
	if !r.warm {
		return nil, false, nil
	}

	entries := make([]service.RankedArticle, 0, len(r.scores))
	for id, likes := range r.scores {
		entries = append(entries, service.RankedArticle{ArticleID: id, Likes: likes})
	}
	slices.SortFunc(entries, func(a, b service.RankedArticle) int {
		if a.Likes != b.Likes {
			if a.Likes > b.Likes {
				return -1
			}

			return 1
		}

		return slices.Compare(a.ArticleID[:], b.ArticleID[:])
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, true, nil
}

func (r *Ranking) Set(_ context.Context, articleID uuid.UUID, likes int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	if r.warm {
		r.scores[articleID] = likes
	}

	return nil
}

func (r *Ranking) Reset(_ context.Context, scores []service.RankedArticle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.scores = make(map[uuid.UUID]int64, len(scores))
	for _, entry := range scores {
		r.scores[entry.ArticleID] = entry.Likes
	}
	r.warm = len(scores) > 0

	return nil
}

// Score returns the current score of articleID.
func (r *Ranking) Score(articleID uuid.UUID) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.scores[articleID]
}

// Publisher records published like events.
type Publisher struct {
	mu     sync.Mutex
	events []*service.LikeEvent
	Err    error
}

func (p *Publisher) PublishLikeEvent(_ context.Context, event *service.LikeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *Publisher) Close() error {
	return nil
}

// Events returns a copy of the recorded events.
func (p *Publisher) Events() []*service.LikeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.events)
}

// MetricsCounts is a point-in-time copy of Metrics.
type MetricsCounts struct {
	LoginSuccess         int
	LoginFailure         int
	LikeToggles          map[string]int
	ArticlesCreated      int
	SlugCollisions       int
	EventPublishFailures int
}

// Metrics counts recorder calls.
type Metrics struct {
	mu                   sync.Mutex
	LoginSuccess         int
	LoginFailure         int
	LikeToggles          map[string]int
	ArticlesCreated      int
	SlugCollisions       int
	EventPublishFailures int
}

func NewMetrics() *Metrics {
	return &Metrics{LikeToggles: make(map[string]int)}
}

func (m *Metrics) RecordLogin(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if success {
		m.LoginSuccess++
	} else {
		m.LoginFailure++
	}
}

func (m *Metrics) RecordLikeToggle(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LikeToggles[action]++
}

func (m *Metrics) RecordArticleCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ArticlesCreated++
}

func (m *Metrics) RecordSlugCollision() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SlugCollisions++
}

func (m *Metrics) RecordEventPublishFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.EventPublishFailures++
}

// Snapshot returns the counts recorded so far.
func (m *Metrics) Snapshot() MetricsCounts {
	m.mu.Lock()
	defer m.mu.Unlock()

	return MetricsCounts{
		LoginSuccess:         m.LoginSuccess,
		LoginFailure:         m.LoginFailure,
		LikeToggles:          maps.Clone(m.LikeToggles),
		ArticlesCreated:      m.ArticlesCreated,
		SlugCollisions:       m.SlugCollisions,
		EventPublishFailures: m.EventPublishFailures,
	}
}

// PlainSanitizer returns its input unchanged.
type PlainSanitizer struct{}

func (PlainSanitizer) PlainText(input string) string { return input }

func (PlainSanitizer) RichText(input string) string { return input }
