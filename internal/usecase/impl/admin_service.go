package impl

import (
	"context"
	"io"
	"log/slog"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/phone"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager     repository.TransactionManager
	residenceRepo repository.ResidenceRepository
	directorRepo  repository.DirectorRepository
	enquiryRepo   repository.EnquiryRepository
	geocoder      service.GeocodingService
	storage       service.StorageService
	logger        *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	residenceRepo repository.ResidenceRepository,
	directorRepo repository.DirectorRepository,
	enquiryRepo repository.EnquiryRepository,
	geocoder service.GeocodingService,
	storage service.StorageService,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager:     txManager,
		residenceRepo: residenceRepo,
		directorRepo:  directorRepo,
		enquiryRepo:   enquiryRepo,
		geocoder:      geocoder,
		storage:       storage,
		logger:        logger,
	}
}

// ListResidences returns every residence in name order, hidden included.
func (srv *adminService) ListResidences(ctx context.Context) ([]*entity.Residence, error) {
	all, err := srv.residenceRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list residences")
	}

	directors, err := srv.directorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list directors")
	}

	byResidence := make(map[uuid.UUID][]*entity.Director, len(all))
	for _, director := range directors {
		byResidence[director.ResidenceID] = append(byResidence[director.ResidenceID], director)
	}

	for _, residence := range all {
		residence.Directors = byResidence[residence.ID]
		decorate(residence)
	}

	return all, nil
}

// GetResidence returns one residence by id for editing.
func (srv *adminService) GetResidence(ctx context.Context, id uuid.UUID) (*entity.Residence, error) {
	residence, err := srv.residenceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResidenceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrResidenceNotFound, "residence not found")
		}

		return nil, errors.Wrap(err, "failed to find residence")
	}

	directors, err := srv.directorRepo.FindByResidence(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load directors")
	}

	residence.Directors = directors
	decorate(residence)

	return residence, nil
}

// CreateResidence creates a hidden residence with the given name and empty
// lists. New residences stay off the public site until an editor reveals them.
func (srv *adminService) CreateResidence(ctx context.Context, name string) (*entity.Residence, error) {
	srv.logger.Info("Creating residence", "name", name)

	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "residence name is required")
	}

	residence := &entity.Residence{
		ID:       uuid.New(),
		Name:     name,
		IsHidden: true,
	}
	residence.NormalizeLists()

	if err := srv.residenceRepo.Create(ctx, residence); err != nil {
		return nil, errors.Wrap(domainerrors.ErrResidenceCreationFailed, err.Error())
	}

	decorate(residence)

	return residence, nil
}

// SaveResidence runs the save pipeline over a draft document:
//
//  1. side-channel lists overwrite their fields when present
//  2. phone-like lists are normalized, duplicates removed and reported
//  3. the staff ratio is normalized
//  4. the address is re-geocoded when it changed; a geocoder failure is a
//     warning, never a save failure
//  5. the residence and its directors are written atomically
func (srv *adminService) SaveResidence(ctx context.Context, draft *entity.Residence, side *usecase.SideChannel) (*usecase.SaveResult, error) {
	srv.logger.Info("Saving residence", "residenceID", draft.ID, "name", draft.Name)

	if draft.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "residence name is required")
	}

	if draft.Type != "" && !draft.Type.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidResidenceType, "unknown residence type")
	}

	stored, err := srv.residenceRepo.FindByID(ctx, draft.ID)
	if err != nil {
		if errors.Is(err, repository.ErrResidenceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrResidenceNotFound, "residence not found")
		}

		return nil, errors.Wrap(err, "failed to find residence")
	}

	applySideChannel(draft, side)

	result := &usecase.SaveResult{}

	result.RemovedDuplicates = append(result.RemovedDuplicates, dedupPhones(&draft.AdditionalPhones)...)
	result.RemovedDuplicates = append(result.RemovedDuplicates, dedupPhones(&draft.AdditionalWhatsapps)...)

	draft.NormalizeStaffRatio()
	draft.NormalizeLists()

	if addressChanged(stored, draft) {
		coords, geocodeErr := srv.geocoder.Geocode(ctx, draft.Address, draft.City, draft.Province)
		if geocodeErr != nil {
			srv.logger.Warn("Geocoding failed, keeping previous coordinates",
				"residenceID", draft.ID, "error", geocodeErr)

			result.GeocodeFailed = true
			draft.Coordinates = stored.Coordinates
		} else {
			draft.Coordinates = coords
			result.GeocodeUpdated = true
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewResidenceRepository().Update(ctx, draft); err != nil {
			return errors.Wrap(err, "failed to update residence")
		}

		if err := repoFactory.NewDirectorRepository().ReplaceForResidence(ctx, draft.ID, draft.Directors); err != nil {
			return errors.Wrap(err, "failed to replace directors")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrResidenceUpdateFailed, err.Error())
	}

	decorate(draft)
	result.Residence = draft

	return result, nil
}

// DeleteResidence removes a residence; directors and favorites cascade.
func (srv *adminService) DeleteResidence(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting residence", "residenceID", id)

	if _, err := srv.residenceRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrResidenceNotFound) {
			return errors.Wrap(domainerrors.ErrResidenceNotFound, "residence not found")
		}

		return errors.Wrap(err, "failed to find residence")
	}

	if err := srv.residenceRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete residence")
	}

	return nil
}

// UploadMedia stores an uploaded file and returns its public URL.
func (srv *adminService) UploadMedia(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	url, err := srv.storage.Upload(ctx, folder, filename, contentType, r)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return url, nil
}

// ListEnquiries returns all contact enquiries, newest first.
func (srv *adminService) ListEnquiries(ctx context.Context) ([]*entity.ContactEnquiry, error) {
	enquiries, err := srv.enquiryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enquiries")
	}

	return enquiries, nil
}

// applySideChannel overwrites the contact list fields that the editing
// surface manages outside the main form. A nil pointer leaves the draft's
// value alone.
func applySideChannel(draft *entity.Residence, side *usecase.SideChannel) {
	if side == nil {
		return
	}

	if side.Phones != nil {
		draft.AdditionalPhones = *side.Phones
	}
	if side.Whatsapps != nil {
		draft.AdditionalWhatsapps = *side.Whatsapps
	}
	if side.Emails != nil {
		draft.Emails = *side.Emails
	}
	if side.Addresses != nil {
		draft.AdditionalAddresses = *side.Addresses
	}
	if side.Cities != nil {
		draft.AdditionalCities = *side.Cities
	}
}

// dedupPhones normalizes a phone list in place and returns the duplicates
// that were removed.
func dedupPhones(list *[]string) []string {
	result := phone.Normalize(*list, phone.Options{
		Normalize:        true,
		RemoveDuplicates: true,
	})
	*list = result.Valid

	return result.Duplicates
}

// addressChanged reports whether any component of the geocoded address
// differs from the stored document.
func addressChanged(stored, draft *entity.Residence) bool {
	return stored.Address != draft.Address ||
		stored.City != draft.City ||
		stored.Province != draft.Province
}
