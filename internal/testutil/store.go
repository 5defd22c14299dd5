// Package testutil provides in-memory stand-ins for the persistence layer and
// the supporting services, for use in use case and handler tests.
package testutil

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"articlehub/internal/domain/entity"
	"articlehub/internal/domain/repository"

	"github.com/google/uuid"
)

// Store is an in-memory implementation of every repository plus a
// TransactionManager. Transactions are serialised on one mutex and work on a
// copy of the data that replaces the committed state only when fn succeeds.
// The unique constraints of the real schema are enforced on insert.
type Store struct {
	mu   sync.Mutex
	data *storeData

	// BeforeArticleInsert, when set, runs inside the transaction right before
	// an article is stored. Returning an error aborts the insert.
	BeforeArticleInsert func(article *entity.Article) error

	// BeforeLikeInsert is the like counterpart of BeforeArticleInsert.
	BeforeLikeInsert func(like *entity.Like) error
}

type storeData struct {
	users    map[uuid.UUID]entity.User
	articles map[uuid.UUID]entity.Article
	likes    map[uuid.UUID]entity.Like
	lastTime time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		data: &storeData{
			users:    make(map[uuid.UUID]entity.User),
			articles: make(map[uuid.UUID]entity.Article),
			likes:    make(map[uuid.UUID]entity.Like),
		},
	}
}

func (d *storeData) clone() *storeData {
	return &storeData{
		users:    maps.Clone(d.users),
		articles: maps.Clone(d.articles),
		likes:    maps.Clone(d.likes),
		lastTime: d.lastTime,
	}
}

// now returns strictly increasing timestamps so ordering by creation time is
// deterministic.
func (d *storeData) now() time.Time {
	t := time.Now().UTC()
	if !t.After(d.lastTime) {
		t = d.lastTime.Add(time.Microsecond)
	}
	d.lastTime = t

	return t
}

// Execute implements repository.TransactionManager.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.data.clone()
	if err := fn(&txFactory{store: s, data: working}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.data = working

	return nil
}

// UserRepo returns an auto-committing user repository.
func (s *Store) UserRepo() repository.UserRepository {
	return &userRepo{access: s.autoCommit}
}

// ArticleRepo returns an auto-committing article repository.
func (s *Store) ArticleRepo() repository.ArticleRepository {
	return &articleRepo{store: s, access: s.autoCommit}
}

// LikeRepo returns an auto-committing like repository.
func (s *Store) LikeRepo() repository.LikeRepository {
	return &likeRepo{store: s, access: s.autoCommit}
}

func (s *Store) autoCommit(fn func(d *storeData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

// LikeCount returns the committed number of likes on articleID.
func (s *Store) LikeCount(articleID uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.countLikes(articleID)
}

// Slugs returns every committed slug, sorted.
func (s *Store) Slugs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	slugs := make([]string, 0, len(s.data.articles))
	for _, article := range s.data.articles {
		slugs = append(slugs, article.Slug)
	}
	slices.Sort(slugs)

	return slugs
}

// AddUser stores user directly, bypassing the unique checks.
func (s *Store) AddUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.CreatedAt = s.data.now()
	user.UpdatedAt = user.CreatedAt
	s.data.users[user.ID] = *user
}

// AddArticle stores an article with the given slug directly.
func (s *Store) AddArticle(title, slug string) *entity.Article {
	s.mu.Lock()
	defer s.mu.Unlock()

	article := entity.NewArticle(title, "")
	article.Slug = slug
	article.CreatedAt = s.data.now()
	article.UpdatedAt = article.CreatedAt
	s.data.articles[article.ID] = *article

	return article
}

func (d *storeData) countLikes(articleID uuid.UUID) int64 {
	var count int64
	for _, like := range d.likes {
		if like.ArticleID == articleID {
			count++
		}
	}

	return count
}

func (d *storeData) withLikes(article entity.Article) *entity.Article {
	article.LikesCount = d.countLikes(article.ID)

	return &article
}

type txFactory struct {
	store *Store
	data  *storeData
}

func (f *txFactory) access(fn func(d *storeData) error) error {
	return fn(f.data)
}

func (f *txFactory) UserRepo() repository.UserRepository {
	return &userRepo{access: f.access}
}

func (f *txFactory) ArticleRepo() repository.ArticleRepository {
	return &articleRepo{store: f.store, access: f.access}
}

func (f *txFactory) LikeRepo() repository.LikeRepository {
	return &likeRepo{store: f.store, access: f.access}
}

type accessFunc func(fn func(d *storeData) error) error

type userRepo struct {
	access accessFunc
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := r.access(func(d *storeData) error {
		user, ok := d.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = &user

		return nil
	})

	return found, err
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	var found *entity.User
	err := r.access(func(d *storeData) error {
		for _, user := range d.users {
			if user.Email == email {
				found = &user

				return nil
			}
		}

		return repository.ErrUserNotFound
	})

	return found, err
}

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	return r.access(func(d *storeData) error {
		for _, existing := range d.users {
			if existing.Email == user.Email {
				return repository.ErrDuplicateEmail
			}
		}
		user.CreatedAt = d.now()
		user.UpdatedAt = user.CreatedAt
		d.users[user.ID] = *user

		return nil
	})
}

func (r *userRepo) Count(_ context.Context) (int64, error) {
	var count int64
	err := r.access(func(d *storeData) error {
		count = int64(len(d.users))

		return nil
	})

	return count, err
}

type articleRepo struct {
	store  *Store
	access accessFunc
}

func (r *articleRepo) Create(_ context.Context, article *entity.Article) error {
	return r.access(func(d *storeData) error {
		if hook := r.store.BeforeArticleInsert; hook != nil {
			if err := hook(article); err != nil {
				return err
			}
		}
		for _, existing := range d.articles {
			if existing.Slug == article.Slug {
				return repository.ErrDuplicateSlug
			}
		}
		article.CreatedAt = d.now()
		article.UpdatedAt = article.CreatedAt
		article.LikesCount = 0
		d.articles[article.ID] = *article

		return nil
	})
}

func (r *articleRepo) FindBySlug(_ context.Context, slug string) (*entity.Article, error) {
	var found *entity.Article
	err := r.access(func(d *storeData) error {
		for _, article := range d.articles {
			if article.Slug == slug {
				found = d.withLikes(article)

				return nil
			}
		}

		return repository.ErrArticleNotFound
	})

	return found, err
}

func (r *articleRepo) FindByIDFromPrimary(_ context.Context, id uuid.UUID) (*entity.Article, error) {
	var found *entity.Article
	err := r.access(func(d *storeData) error {
		article, ok := d.articles[id]
		if !ok {
			return repository.ErrArticleNotFound
		}
		found = d.withLikes(article)

		return nil
	})

	return found, err
}

func (r *articleRepo) List(_ context.Context) ([]*entity.Article, error) {
	var articles []*entity.Article
	err := r.access(func(d *storeData) error {
		for _, article := range d.articles {
			articles = append(articles, d.withLikes(article))
		}

		return nil
	})
	slices.SortFunc(articles, func(a, b *entity.Article) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return articles, err
}

func (r *articleRepo) ListByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Article, error) {
	var articles []*entity.Article
	err := r.access(func(d *storeData) error {
		for _, id := range ids {
			if article, ok := d.articles[id]; ok {
				articles = append(articles, d.withLikes(article))
			}
		}

		return nil
	})

	return articles, err
}

func (r *articleRepo) TopByLikes(ctx context.Context, limit int) ([]*entity.Article, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(articles, func(a, b *entity.Article) int {
		switch {
		case a.LikesCount > b.LikesCount:
			return -1
		case a.LikesCount < b.LikesCount:
			return 1
		default:
			return 0
		}
	})
	if len(articles) > limit {
		articles = articles[:limit]
	}

	return articles, nil
}

func (r *articleRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	var exists bool
	err := r.access(func(d *storeData) error {
		for _, article := range d.articles {
			if article.Slug == slug {
				exists = true

				break
			}
		}

		return nil
	})

	return exists, err
}

func (r *articleRepo) CountSlugsWithPrefix(_ context.Context, prefix string) (int64, error) {
	var count int64
	err := r.access(func(d *storeData) error {
		for _, article := range d.articles {
			if strings.HasPrefix(article.Slug, prefix) {
				count++
			}
		}

		return nil
	})

	return count, err
}

func (r *articleRepo) Count(_ context.Context) (int64, error) {
	var count int64
	err := r.access(func(d *storeData) error {
		count = int64(len(d.articles))

		return nil
	})

	return count, err
}

type likeRepo struct {
	store  *Store
	access accessFunc
}

func (r *likeRepo) FindByUserAndArticle(_ context.Context, userID, articleID uuid.UUID) (*entity.Like, error) {
	var found *entity.Like
	err := r.access(func(d *storeData) error {
		for _, like := range d.likes {
			if like.UserID == userID && like.ArticleID == articleID {
				found = &like

				return nil
			}
		}

		return repository.ErrLikeNotFound
	})

	return found, err
}

func (r *likeRepo) Create(_ context.Context, like *entity.Like) error {
	return r.access(func(d *storeData) error {
		if hook := r.store.BeforeLikeInsert; hook != nil {
			if err := hook(like); err != nil {
				return err
			}
		}
		if _, ok := d.articles[like.ArticleID]; !ok {
			return repository.ErrArticleNotFound
		}
		for _, existing := range d.likes {
			if existing.UserID == like.UserID && existing.ArticleID == like.ArticleID {
				return repository.ErrDuplicateLike
			}
		}
		like.CreatedAt = d.now()
		like.UpdatedAt = like.CreatedAt
		d.likes[like.ID] = *like

		return nil
	})
}

func (r *likeRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.access(func(d *storeData) error {
		if _, ok := d.likes[id]; !ok {
			return repository.ErrLikeNotFound
		}
		delete(d.likes, id)

		return nil
	})
}

func (r *likeRepo) CountByArticle(_ context.Context, articleID uuid.UUID) (int64, error) {
	var count int64
	err := r.access(func(d *storeData) error {
		count = d.countLikes(articleID)

		return nil
	})

	return count, err
}
