package impl

import (
	"context"
	"math/rand/v2"
	"strconv"

	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/domain/repository"
	"articlehub/internal/util"

	"github.com/pkg/errors"
)

const (
	slugSuffixMin = 100000
	slugSuffixMax = 999999
)

// slugGenerator allocates unique article slugs. It only reads; the unique
// index on articles.slug is what finally decides, so callers must retry on
// repository.ErrDuplicateSlug.
type slugGenerator struct {
	randomAttempts   int
	fallbackAttempts int
	suffix           func() int
}

func newSlugGenerator(randomAttempts, fallbackAttempts int) *slugGenerator {
	return &slugGenerator{
		randomAttempts:   randomAttempts,
		fallbackAttempts: fallbackAttempts,
		suffix: func() int {
			return slugSuffixMin + rand.IntN(slugSuffixMax-slugSuffixMin+1)
		},
	}
}

// Generate returns a slug for title that is free in repo at the time of the call.
func (g *slugGenerator) Generate(ctx context.Context, repo repository.ArticleRepository, title string) (string, error) {
	base := util.SlugBase(title)

	taken, err := repo.SlugExists(ctx, base)
	if err != nil {
		return "", errors.Wrap(err, "failed to check slug")
	}
	if !taken {
		return base, nil
	}

	for range g.randomAttempts {
		candidate := base + "-" + strconv.Itoa(g.suffix())

		taken, err := repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug")
		}
		if !taken {
			return candidate, nil
		}
	}

	// Random suffixes keep colliding; switch to a counter past every existing
	// "base-" slug.
	existing, err := repo.CountSlugsWithPrefix(ctx, base+"-")
	if err != nil {
		return "", errors.Wrap(err, "failed to count slugs")
	}

	for n := existing + 1; n <= existing+int64(g.fallbackAttempts); n++ {
		candidate := base + "-" + strconv.FormatInt(n, 10)

		taken, err := repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug")
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", domainerrors.ErrSlugExhausted.WithDetails("slug base: " + base)
}
