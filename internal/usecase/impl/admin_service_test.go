package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	mockRepo "directorio/internal/mocks/repository"
	mockSvc "directorio/internal/mocks/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service       usecase.AdminUsecase
	txManager     *mockRepo.MockTransactionManager
	residenceRepo *mockRepo.MockResidenceRepository
	directorRepo  *mockRepo.MockDirectorRepository
	enquiryRepo   *mockRepo.MockEnquiryRepository
	geocoder      *mockSvc.MockGeocodingService
	storage       *mockSvc.MockStorageService
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	residenceRepo := mockRepo.NewMockResidenceRepository(t)
	directorRepo := mockRepo.NewMockDirectorRepository(t)
	enquiryRepo := mockRepo.NewMockEnquiryRepository(t)
	geocoder := mockSvc.NewMockGeocodingService(t)
	storage := mockSvc.NewMockStorageService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(
		txManager,
		residenceRepo,
		directorRepo,
		enquiryRepo,
		geocoder,
		storage,
		logger,
	)

	return adminServiceFixtures{
		service:       service,
		txManager:     txManager,
		residenceRepo: residenceRepo,
		directorRepo:  directorRepo,
		enquiryRepo:   enquiryRepo,
		geocoder:      geocoder,
		storage:       storage,
	}
}

// expectSaveTransaction wires the transaction callback through to
// transaction-bound repository mocks and returns them for assertions.
func expectSaveTransaction(ctx context.Context, fx adminServiceFixtures) (*mockRepo.MockResidenceRepository, *mockRepo.MockDirectorRepository) {
	txResidenceRepo := &mockRepo.MockResidenceRepository{}
	txDirectorRepo := &mockRepo.MockDirectorRepository{}

	factory := &mockRepo.MockRepositoryFactory{}
	factory.EXPECT().NewResidenceRepository().Return(txResidenceRepo)
	factory.EXPECT().NewDirectorRepository().Return(txDirectorRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txResidenceRepo, txDirectorRepo
}

func TestAdminService_CreateResidence(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.residenceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Residence")).
		Return(nil)

	residence, err := fx.service.CreateResidence(ctx, "Hogar Nuevo")

	require.NoError(t, err)
	assert.Equal(t, "Hogar Nuevo", residence.Name)
	assert.True(t, residence.IsHidden, "new residences start hidden")
	assert.NotNil(t, residence.Services)
	assert.NotEqual(t, uuid.Nil, residence.ID)
}

func TestAdminService_CreateResidence_RequiresName(t *testing.T) {
	fx := createTestAdminService(t)

	residence, err := fx.service.CreateResidence(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, residence)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_SaveResidence_DeduplicatesPhones(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	stored := &entity.Residence{ID: uuid.New(), Name: "Hogar Los Tilos"}

	draft := stored.Clone()
	draft.AdditionalPhones = []string{"099123456", "099123456", "099 123 456"}

	fx.residenceRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	txResidenceRepo, txDirectorRepo := expectSaveTransaction(ctx, fx)
	txResidenceRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Residence")).Return(nil)
	txDirectorRepo.EXPECT().ReplaceForResidence(ctx, stored.ID, mock.Anything).Return(nil)

	result, err := fx.service.SaveResidence(ctx, draft, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"099123456"}, result.Residence.AdditionalPhones)
	assert.Equal(t, []string{"099123456", "099 123 456"}, result.RemovedDuplicates)

	// a second save of the already-clean list reports nothing
	rerun := result.Residence.Clone()
	fx.residenceRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	txResidenceRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Residence")).Return(nil)
	txDirectorRepo.EXPECT().ReplaceForResidence(ctx, stored.ID, mock.Anything).Return(nil)

	again, err := fx.service.SaveResidence(ctx, rerun, nil)

	require.NoError(t, err)
	assert.Empty(t, again.RemovedDuplicates)
}

func TestAdminService_SaveResidence_SideChannelOverwrites(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	stored := &entity.Residence{ID: uuid.New(), Name: "Hogar Los Tilos"}
	stored.AdditionalPhones = []string{"29001234"}

	draft := stored.Clone()
	phones := []string{"099111222"}
	emails := []string{}

	fx.residenceRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	txResidenceRepo, txDirectorRepo := expectSaveTransaction(ctx, fx)
	txResidenceRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Residence")).Return(nil)
	txDirectorRepo.EXPECT().ReplaceForResidence(ctx, stored.ID, mock.Anything).Return(nil)

	result, err := fx.service.SaveResidence(ctx, draft, &usecase.SideChannel{
		Phones: &phones,
		Emails: &emails,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"099111222"}, result.Residence.AdditionalPhones)
	assert.Empty(t, result.Residence.Emails, "an empty staged list still overwrites")
}

func TestAdminService_SaveResidence_GeocodesOnAddressChange(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	stored := &entity.Residence{
		ID:          uuid.New(),
		Name:        "Hogar Los Tilos",
		Address:     "Av. Rivera 1234",
		City:        "Montevideo",
		Province:    "Montevideo",
		Coordinates: entity.Coordinates{Lat: -34.9, Lng: -56.2},
	}

	draft := stored.Clone()
	draft.Address = "Bvar. Artigas 5678"

	coords := entity.Coordinates{Lat: -34.89, Lng: -56.17}

	fx.residenceRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, "Bvar. Artigas 5678", "Montevideo", "Montevideo").
		Return(coords, nil)

	txResidenceRepo, txDirectorRepo := expectSaveTransaction(ctx, fx)
	txResidenceRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Residence")).Return(nil)
	txDirectorRepo.EXPECT().ReplaceForResidence(ctx, stored.ID, mock.Anything).Return(nil)

	result, err := fx.service.SaveResidence(ctx, draft, nil)

	require.NoError(t, err)
	assert.True(t, result.GeocodeUpdated)
	assert.False(t, result.GeocodeFailed)
	assert.Equal(t, coords, result.Residence.Coordinates)
}

func TestAdminService_SaveResidence_GeocodeFailureIsSoft(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	stored := &entity.Residence{
		ID:          uuid.New(),
		Name:        "Hogar Los Tilos",
		Address:     "Av. Rivera 1234",
		City:        "Montevideo",
		Coordinates: entity.Coordinates{Lat: -34.9, Lng: -56.2},
	}

	draft := stored.Clone()
	draft.Address = "Dirección inexistente 99999"

	fx.residenceRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, "Dirección inexistente 99999", "Montevideo", "").
		Return(entity.Coordinates{}, errors.New("geocoder unavailable"))

	txResidenceRepo, txDirectorRepo := expectSaveTransaction(ctx, fx)
	txResidenceRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Residence")).Return(nil)
	txDirectorRepo.EXPECT().ReplaceForResidence(ctx, stored.ID, mock.Anything).Return(nil)

	result, err := fx.service.SaveResidence(ctx, draft, nil)

	require.NoError(t, err, "a geocoder outage must not block the save")
	assert.True(t, result.GeocodeFailed)
	assert.Equal(t, stored.Coordinates, result.Residence.Coordinates,
		"previous coordinates are kept")
}

func TestAdminService_SaveResidence_SkipsGeocodeWhenUnchanged(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	stored := &entity.Residence{
		ID:      uuid.New(),
		Name:    "Hogar Los Tilos",
		Address: "Av. Rivera 1234",
		City:    "Montevideo",
	}

	draft := stored.Clone()
	draft.Description = "Texto actualizado"

	fx.residenceRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	txResidenceRepo, txDirectorRepo := expectSaveTransaction(ctx, fx)
	txResidenceRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Residence")).Return(nil)
	txDirectorRepo.EXPECT().ReplaceForResidence(ctx, stored.ID, mock.Anything).Return(nil)

	result, err := fx.service.SaveResidence(ctx, draft, nil)

	require.NoError(t, err)
	assert.False(t, result.GeocodeUpdated)
	assert.False(t, result.GeocodeFailed)
}

func TestAdminService_SaveResidence_NormalizesStaffRatio(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	stored := &entity.Residence{ID: uuid.New(), Name: "Hogar Los Tilos"}

	draft := stored.Clone()
	draft.StaffRatio = &entity.StaffRatio{
		Ratio:      "  ",
		Categories: []string{"enfermería"},
	}

	fx.residenceRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	txResidenceRepo, txDirectorRepo := expectSaveTransaction(ctx, fx)
	txResidenceRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Residence")).Return(nil)
	txDirectorRepo.EXPECT().ReplaceForResidence(ctx, stored.ID, mock.Anything).Return(nil)

	result, err := fx.service.SaveResidence(ctx, draft, nil)

	require.NoError(t, err)
	assert.Nil(t, result.Residence.StaffRatio, "a blank ratio clears the structure")
}

func TestAdminService_SaveResidence_TransactionFailureRollsUp(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	stored := &entity.Residence{ID: uuid.New(), Name: "Hogar Los Tilos"}
	draft := stored.Clone()
	draft.Description = "editado"

	fx.residenceRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	txResidenceRepo, _ := expectSaveTransaction(ctx, fx)
	txResidenceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Residence")).
		Return(errors.New("connection reset"))

	result, err := fx.service.SaveResidence(ctx, draft, nil)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrResidenceUpdateFailed)
}

func TestAdminService_SaveResidence_UnknownResidence(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	draft := &entity.Residence{ID: uuid.New(), Name: "Fantasma"}

	fx.residenceRepo.EXPECT().FindByID(ctx, draft.ID).
		Return(nil, repository.ErrResidenceNotFound)

	result, err := fx.service.SaveResidence(ctx, draft, nil)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrResidenceNotFound)
}

func TestAdminService_SaveResidence_RejectsUnknownType(t *testing.T) {
	fx := createTestAdminService(t)

	draft := &entity.Residence{ID: uuid.New(), Name: "Hogar", Type: "cooperativa"}

	result, err := fx.service.SaveResidence(context.Background(), draft, nil)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidResidenceType)
}

func TestAdminService_DeleteResidence(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	stored := &entity.Residence{ID: uuid.New(), Name: "Hogar Los Tilos"}

	fx.residenceRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.residenceRepo.EXPECT().Delete(ctx, stored.ID).Return(nil)

	require.NoError(t, fx.service.DeleteResidence(ctx, stored.ID))
}

func TestAdminService_UploadMedia(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.storage.EXPECT().
		Upload(ctx, "residences", "fachada.jpg", "image/jpeg", mock.Anything).
		Return("https://media.example.com/residences/fachada.jpg", nil)

	url, err := fx.service.UploadMedia(ctx, "residences", "fachada.jpg", "image/jpeg", strings.NewReader("img"))

	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/residences/fachada.jpg", url)
}

func TestAdminService_UploadMedia_Failure(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.storage.EXPECT().
		Upload(ctx, "residences", "fachada.jpg", "image/jpeg", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	url, err := fx.service.UploadMedia(ctx, "residences", "fachada.jpg", "image/jpeg", strings.NewReader("img"))

	require.Error(t, err)
	assert.Empty(t, url)
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}
