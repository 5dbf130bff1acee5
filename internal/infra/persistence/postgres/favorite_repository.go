package postgres

import (
	"context"

	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface
// using GORM. Both Add and Remove are idempotent.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new instance of favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindByUser retrieves the residence ids favorited by a user, most recent first.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("residence_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user favorites")
	}

	return ids, nil
}

// Exists reports whether the user has favorited the residence.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, residenceID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND residence_id = ?", userID, residenceID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

// Add inserts the favorite. Re-adding an existing favorite is a no-op.
func (repo *favoriteRepository) Add(ctx context.Context, userID, residenceID uuid.UUID) error {
	record := model.FavoriteModel{UserID: userID, ResidenceID: residenceID}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).Error; err != nil {
		return errors.Wrap(err, "failed to add favorite")
	}

	return nil
}

// Remove deletes the favorite. Removing a missing favorite is a no-op.
func (repo *favoriteRepository) Remove(ctx context.Context, userID, residenceID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND residence_id = ?", userID, residenceID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}
