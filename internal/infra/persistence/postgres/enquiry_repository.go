package postgres

import (
	"context"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// enquiryRepository implements the repository.EnquiryRepository interface
// using GORM. Enquiries are append-only from the public contact flow.
type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates a new instance of enquiryRepository.
func NewEnquiryRepository(db *gorm.DB) repository.EnquiryRepository {
	return &enquiryRepository{db: db}
}

// Create persists a new contact enquiry.
func (repo *enquiryRepository) Create(ctx context.Context, enquiry *entity.ContactEnquiry) error {
	record := &model.ContactEnquiryModel{
		ID:          enquiry.ID,
		Name:        enquiry.Name,
		Email:       enquiry.Email,
		Phone:       enquiry.Phone,
		Message:     enquiry.Message,
		ResidenceID: enquiry.ResidenceID,
		CreatedAt:   enquiry.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(record).Error; err != nil {
		return errors.Wrap(err, "failed to create enquiry")
	}

	enquiry.ID = record.ID
	enquiry.CreatedAt = record.CreatedAt

	return nil
}

// FindAll retrieves all enquiries, most recent first.
func (repo *enquiryRepository) FindAll(ctx context.Context) ([]*entity.ContactEnquiry, error) {
	var records []model.ContactEnquiryModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list enquiries")
	}

	enquiries := make([]*entity.ContactEnquiry, len(records))
	for i, record := range records {
		enquiries[i] = &entity.ContactEnquiry{
			ID:          record.ID,
			Name:        record.Name,
			Email:       record.Email,
			Phone:       record.Phone,
			Message:     record.Message,
			ResidenceID: record.ResidenceID,
			CreatedAt:   record.CreatedAt,
		}
	}

	return enquiries, nil
}
