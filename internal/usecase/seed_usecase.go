package usecase

import "context"

// SeedUsecase populates an empty store with initial data.
type SeedUsecase interface {
	Seed(ctx context.Context) error
}
