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

// residenceRepository implements the repository.ResidenceRepository interface
// using GORM. It satisfies reads for the public catalog and writes for the
// admin surface; the transparency score is never persisted.
type residenceRepository struct {
	db *gorm.DB
}

// NewResidenceRepository creates a new instance of residenceRepository.
func NewResidenceRepository(db *gorm.DB) repository.ResidenceRepository {
	return &residenceRepository{db: db}
}

// FindAll retrieves every residence ordered by name, hidden ones included.
func (repo *residenceRepository) FindAll(ctx context.Context) ([]*entity.Residence, error) {
	var records []model.ResidenceModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list residences")
	}

	residences := make([]*entity.Residence, len(records))
	for i := range records {
		residences[i] = toResidenceDomain(&records[i])
	}

	return residences, nil
}

// FindByID retrieves a single residence by its unique ID.
func (repo *residenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Residence, error) {
	var record model.ResidenceModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResidenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find residence by ID")
	}

	return toResidenceDomain(&record), nil
}

// Create persists a new residence.
func (repo *residenceRepository) Create(ctx context.Context, residence *entity.Residence) error {
	record := fromResidenceDomain(residence)
	if err := repo.db.WithContext(ctx).Create(record).Error; err != nil {
		return errors.Wrap(err, "failed to create residence")
	}

	// Write back DB-generated values.
	residence.ID = record.ID
	residence.CreatedAt = record.CreatedAt
	residence.UpdatedAt = record.UpdatedAt

	return nil
}

// Update writes the full residence row back. Last write wins.
func (repo *residenceRepository) Update(ctx context.Context, residence *entity.Residence) error {
	record := fromResidenceDomain(residence)

	// Select("*") forces zero values (cleared fields, false flags) to be written.
	result := repo.db.WithContext(ctx).
		Model(&model.ResidenceModel{}).
		Where("id = ?", residence.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(record)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update residence")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResidenceNotFound
	}

	return nil
}

// Delete removes a residence; directors cascade at the store level.
func (repo *residenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ResidenceModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete residence")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResidenceNotFound
	}

	return nil
}

// DistinctProvinces returns the sorted distinct provinces of visible residences.
func (repo *residenceRepository) DistinctProvinces(ctx context.Context) ([]string, error) {
	return repo.distinctColumn(ctx, "province")
}

// DistinctCities returns the sorted distinct cities of visible residences.
func (repo *residenceRepository) DistinctCities(ctx context.Context) ([]string, error) {
	return repo.distinctColumn(ctx, "city")
}

func (repo *residenceRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	var values []string
	if err := repo.db.WithContext(ctx).
		Model(&model.ResidenceModel{}).
		Distinct(column).
		Where("is_hidden = ?", false).
		Where(column+" <> ''").
		Order(column + " ASC").
		Pluck(column, &values).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list distinct %s values", column)
	}

	return values, nil
}

// toResidenceDomain converts a persistence model to a domain entity.
// Directors are loaded separately through DirectorRepository.
func toResidenceDomain(record *model.ResidenceModel) *entity.Residence {
	residence := &entity.Residence{
		ID:            record.ID,
		Name:          record.Name,
		SecondaryName: record.SecondaryName,
		Type:          entity.ResidenceType(record.Type),
		City:          record.City,
		Province:      record.Province,
		Address:       record.Address,
		Description:   record.Description,

		Image:     record.Image,
		Images:    record.Images,
		LogoURL:   record.LogoURL,
		VideoURLs: record.VideoURLs,

		Price:      record.Price,
		PriceRange: record.PriceRange,
		Capacity:   record.Capacity,
		Rating:     record.Rating,

		Services:       record.Services,
		Facilities:     record.Facilities,
		Activities:     record.Activities,
		Certifications: record.Certifications,
		StayTypes:      record.StayTypes,
		Admissions:     record.Admissions,

		Phone:               record.Phone,
		Email:               record.Email,
		Whatsapp:            record.Whatsapp,
		Emails:              record.Emails,
		AdditionalPhones:    record.AdditionalPhones,
		AdditionalWhatsapps: record.AdditionalWhatsapps,
		AdditionalAddresses: record.AdditionalAddresses,
		AdditionalCities:    record.AdditionalCities,

		Website:   record.Website,
		Facebook:  record.Facebook,
		Instagram: record.Instagram,
		Schedule:  record.Schedule,
		MapsURL:   record.MapsURL,

		RedIntegra: record.RedIntegra,
		IsHidden:   record.IsHidden,

		Coordinates:       entity.Coordinates{Lat: record.Latitude, Lng: record.Longitude},
		FireCertification: record.FireCertification,

		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}

	if record.StaffRatio != nil {
		residence.StaffRatio = &entity.StaffRatio{
			Ratio:       record.StaffRatio.Ratio,
			Description: record.StaffRatio.Description,
			Categories:  record.StaffRatio.Categories,
		}
	}

	// Lists are never nil at the repository boundary.
	residence.NormalizeLists()

	return residence
}

// fromResidenceDomain converts a domain entity to a persistence model.
func fromResidenceDomain(residence *entity.Residence) *model.ResidenceModel {
	record := &model.ResidenceModel{
		ID:            residence.ID,
		Name:          residence.Name,
		SecondaryName: residence.SecondaryName,
		Type:          string(residence.Type),
		City:          residence.City,
		Province:      residence.Province,
		Address:       residence.Address,
		Description:   residence.Description,

		Image:     residence.Image,
		Images:    residence.Images,
		LogoURL:   residence.LogoURL,
		VideoURLs: residence.VideoURLs,

		Price:      residence.Price,
		PriceRange: residence.PriceRange,
		Capacity:   residence.Capacity,
		Rating:     residence.Rating,

		Services:       residence.Services,
		Facilities:     residence.Facilities,
		Activities:     residence.Activities,
		Certifications: residence.Certifications,
		StayTypes:      residence.StayTypes,
		Admissions:     residence.Admissions,

		Phone:               residence.Phone,
		Email:               residence.Email,
		Whatsapp:            residence.Whatsapp,
		Emails:              residence.Emails,
		AdditionalPhones:    residence.AdditionalPhones,
		AdditionalWhatsapps: residence.AdditionalWhatsapps,
		AdditionalAddresses: residence.AdditionalAddresses,
		AdditionalCities:    residence.AdditionalCities,

		Website:   residence.Website,
		Facebook:  residence.Facebook,
		Instagram: residence.Instagram,
		Schedule:  residence.Schedule,
		MapsURL:   residence.MapsURL,

		RedIntegra: residence.RedIntegra,
		IsHidden:   residence.IsHidden,

		Latitude:          residence.Coordinates.Lat,
		Longitude:         residence.Coordinates.Lng,
		FireCertification: residence.FireCertification,
	}

	if residence.StaffRatio != nil {
		record.StaffRatio = &model.StaffRatioData{
			Ratio:       residence.StaffRatio.Ratio,
			Description: residence.StaffRatio.Description,
			Categories:  residence.StaffRatio.Categories,
		}
	}

	return record
}
