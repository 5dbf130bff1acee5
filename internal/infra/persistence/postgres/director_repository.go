package postgres

import (
	"context"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// directorRepository implements the repository.DirectorRepository interface
// using GORM. Director rows are replaced wholesale on every residence save.
type directorRepository struct {
	db *gorm.DB
}

// NewDirectorRepository creates a new instance of directorRepository.
func NewDirectorRepository(db *gorm.DB) repository.DirectorRepository {
	return &directorRepository{db: db}
}

// FindAll retrieves every director row ordered for batch grouping.
func (repo *directorRepository) FindAll(ctx context.Context) ([]*entity.Director, error) {
	var records []model.DirectorModel
	if err := repo.db.WithContext(ctx).
		Order("residence_id ASC, display_order ASC").
		Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list directors")
	}

	return toDirectorDomainList(records), nil
}

// FindByResidence retrieves one residence's directors in display order.
func (repo *directorRepository) FindByResidence(ctx context.Context, residenceID uuid.UUID) ([]*entity.Director, error) {
	var records []model.DirectorModel
	if err := repo.db.WithContext(ctx).
		Where("residence_id = ?", residenceID).
		Order("display_order ASC").
		Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list residence directors")
	}

	return toDirectorDomainList(records), nil
}

// ReplaceForResidence deletes the residence's director rows and inserts the
// given list, assigning display_order from slice position. Callers run this
// inside a transaction together with the residence update.
func (repo *directorRepository) ReplaceForResidence(ctx context.Context, residenceID uuid.UUID, directors []*entity.Director) error {
	if err := repo.db.WithContext(ctx).
		Where("residence_id = ?", residenceID).
		Delete(&model.DirectorModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear residence directors")
	}

	if len(directors) == 0 {
		return nil
	}

	records := make([]model.DirectorModel, len(directors))
	for i, director := range directors {
		records[i] = model.DirectorModel{
			ID:           director.ID,
			ResidenceID:  residenceID,
			Name:         director.Name,
			Role:         director.Role,
			PhotoURL:     director.PhotoURL,
			DisplayOrder: i,
		}
	}

	if err := repo.db.WithContext(ctx).Create(&records).Error; err != nil {
		return errors.Wrap(err, "failed to insert residence directors")
	}

	return nil
}

func toDirectorDomainList(records []model.DirectorModel) []*entity.Director {
	directors := make([]*entity.Director, len(records))
	for i, record := range records {
		directors[i] = &entity.Director{
			ID:           record.ID,
			ResidenceID:  record.ResidenceID,
			Name:         record.Name,
			Role:         record.Role,
			PhotoURL:     record.PhotoURL,
			DisplayOrder: record.DisplayOrder,
		}
	}

	return directors
}
