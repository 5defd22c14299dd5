package postgres

import (
	"context"

	"articlehub/internal/domain/entity"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/domain/repository"
	"articlehub/internal/errors"
	"articlehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

// FindByUserAndArticle locks the matching row with FOR UPDATE so concurrent
// toggles on the same pair serialise behind the first transaction.
func (repo *likeRepository) FindByUserAndArticle(ctx context.Context, userID, articleID uuid.UUID) (*entity.Like, error) {
	var likeM model.LikeModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Take(&likeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like")
	}

	return toLikeDomain(&likeM), nil
}

// Create persists a new like.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrArticleNotFound.WrapMessage("like references a missing user or article")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.CreatedAt = likeM.CreatedAt
	like.UpdatedAt = likeM.UpdatedAt

	return nil
}

// Delete removes a like by id.
func (repo *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete like")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	return nil
}

// CountByArticle returns the number of likes on an article.
func (repo *likeRepository) CountByArticle(ctx context.Context, articleID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("article_id = ?", articleID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

func toLikeDomain(likeM *model.LikeModel) *entity.Like {
	return &entity.Like{
		ID:        likeM.ID,
		UserID:    likeM.UserID,
		ArticleID: likeM.ArticleID,
		CreatedAt: likeM.CreatedAt,
		UpdatedAt: likeM.UpdatedAt,
	}
}

func fromLikeDomain(like *entity.Like) *model.LikeModel {
	return &model.LikeModel{
		ID:        like.ID,
		UserID:    like.UserID,
		ArticleID: like.ArticleID,
		CreatedAt: like.CreatedAt,
		UpdatedAt: like.UpdatedAt,
	}
}
