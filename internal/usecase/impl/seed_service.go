package impl

import (
	"context"
	"log/slog"

	"articlehub/internal/domain/entity"
	"articlehub/internal/domain/repository"
	"articlehub/internal/domain/service"
	"articlehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type seedUser struct {
	name     string
	email    string
	password string
}

//nolint:gochecknoglobals
var (
	seedUsers = []seedUser{
		{name: "John Doe", email: "johndoe@example.com", password: "johndoe"},
		{name: "Jane Doe", email: "janedoe@example.com", password: "janedoe"},
	}

	seedArticles = []usecase.CreateArticleInput{
		{Title: "My article", Description: "This is my first article that I love"},
		{Title: "Cool article", Description: "Have you seen this article on whatever"},
	}
)

type seedService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	articles  usecase.ArticleUsecase
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Articles  usecase.ArticleUsecase
	Logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		articles:  params.Articles,
		logger:    params.Logger,
	}
}

// Seed inserts the demo users when the users table is empty and the demo
// articles when the articles table is empty. Tables that already hold rows
// are left alone.
func (srv *seedService) Seed(ctx context.Context) error {
	srv.logger.Info("Creating initial data")

	if err := srv.seedUsers(ctx); err != nil {
		return err
	}
	if err := srv.seedArticles(ctx); err != nil {
		return err
	}

	srv.logger.Info("Initial data created")

	return nil
}

func (srv *seedService) seedUsers(ctx context.Context) error {
	users := make([]*entity.User, 0, len(seedUsers))
	for _, seed := range seedUsers {
		hash, err := srv.hasher.Hash(seed.password)
		if err != nil {
			return errors.Wrapf(err, "failed to hash password for %s", seed.email)
		}
		users = append(users, entity.NewUser(seed.name, seed.email, hash))
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		count, err := userRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count users")
		}
		if count > 0 {
			srv.logger.Debug("Users present, skipping user seed", slog.Int64("count", count))

			return nil
		}

		for _, user := range users {
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrapf(err, "failed to seed user %s", user.Email)
			}
		}

		return nil
	})
}

func (srv *seedService) seedArticles(ctx context.Context) error {
	var count int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		count, err = repoFactory.ArticleRepo().Count(ctx)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to count articles")
	}
	if count > 0 {
		srv.logger.Debug("Articles present, skipping article seed", slog.Int64("count", count))

		return nil
	}

	for i := range seedArticles {
		if _, err := srv.articles.Create(ctx, &seedArticles[i]); err != nil {
			return errors.Wrapf(err, "failed to seed article %q", seedArticles[i].Title)
		}
	}

	return nil
}
