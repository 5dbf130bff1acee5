package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	mockRepo "directorio/internal/mocks/repository"
	mockSvc "directorio/internal/mocks/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service       usecase.CatalogUsecase
	residenceRepo *mockRepo.MockResidenceRepository
	directorRepo  *mockRepo.MockDirectorRepository
	qrService     *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	residenceRepo := mockRepo.NewMockResidenceRepository(t)
	directorRepo := mockRepo.NewMockDirectorRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(residenceRepo, directorRepo, qrService, logger)

	return catalogServiceFixtures{
		service:       service,
		residenceRepo: residenceRepo,
		directorRepo:  directorRepo,
		qrService:     qrService,
	}
}

func catalogResidence(name, city string, hidden bool) *entity.Residence {
	return &entity.Residence{
		ID:       uuid.New(),
		Name:     name,
		City:     city,
		Province: "Montevideo",
		IsHidden: hidden,
	}
}

func TestCatalogService_ListResidences_ExcludesHidden(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	visible := catalogResidence("Hogar Los Tilos", "Montevideo", false)
	hidden := catalogResidence("Residencia en obra", "Canelones", true)

	fx.residenceRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Residence{visible, hidden}, nil)
	fx.directorRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Director{}, nil)

	result, err := fx.service.ListResidences(ctx)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, visible.ID, result[0].ID)
	assert.NotNil(t, result[0].Services, "lists should be normalized")
}

func TestCatalogService_ListResidences_JoinsDirectorsAndScores(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	residence := catalogResidence("Residencial del Prado", "Montevideo", false)
	residence.Services = []string{"enfermería"}
	residence.Website = "https://delprado.com.uy"

	director := &entity.Director{
		ID:          uuid.New(),
		ResidenceID: residence.ID,
		Name:        "Laura Fernández",
		Role:        "Directora técnica",
	}

	fx.residenceRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Residence{residence}, nil)
	fx.directorRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Director{director}, nil)

	result, err := fx.service.ListResidences(ctx)

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0].Directors, 1)
	assert.Equal(t, "Laura Fernández", result[0].Directors[0].Name)
	// services, website and directors each score one point
	assert.Equal(t, 3, result[0].Transparency)
}

func TestCatalogService_SearchResidences_AppliesFilter(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	montevideo := catalogResidence("Hogar Los Tilos", "Montevideo", false)
	canelones := catalogResidence("Residencial Atlántida", "Atlántida", false)
	canelones.Province = "Canelones"

	fx.residenceRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Residence{montevideo, canelones}, nil)
	fx.directorRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Director{}, nil)

	result, err := fx.service.SearchResidences(ctx, entity.FilterSpec{Province: "canelones"})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, canelones.ID, result[0].ID)
}

func TestCatalogService_GetResidence_ReturnsHidden(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	hidden := catalogResidence("Residencia en obra", "Canelones", true)

	fx.residenceRepo.EXPECT().FindByID(ctx, hidden.ID).Return(hidden, nil)
	fx.directorRepo.EXPECT().FindByResidence(ctx, hidden.ID).
		Return([]*entity.Director{}, nil)

	result, err := fx.service.GetResidence(ctx, hidden.ID)

	require.NoError(t, err)
	assert.Equal(t, hidden.ID, result.ID)
	assert.True(t, result.IsHidden)
}

func TestCatalogService_GetResidence_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.residenceRepo.EXPECT().FindByID(ctx, id).
		Return(nil, repository.ErrResidenceNotFound)

	result, err := fx.service.GetResidence(ctx, id)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrResidenceNotFound)
}

func TestCatalogService_Compare_DropsUnresolvedSelections(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	first := catalogResidence("Hogar Los Tilos", "Montevideo", false)
	second := catalogResidence("Residencial del Prado", "Montevideo", false)
	third := catalogResidence("Residencia oculta", "Salto", true)

	fx.residenceRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Residence{first, second, third}, nil)
	fx.directorRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Director{}, nil)

	// third was hidden after selection; it should vanish from the comparison
	comparison, err := fx.service.Compare(ctx, []uuid.UUID{first.ID, second.ID, third.ID})

	require.NoError(t, err)
	require.Len(t, comparison.Residences, 2)
	assert.Equal(t, first.ID, comparison.Residences[0].ID)
	assert.Equal(t, second.ID, comparison.Residences[1].ID)
}

func TestCatalogService_Compare_InsufficientAfterDrop(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	only := catalogResidence("Hogar Los Tilos", "Montevideo", false)

	fx.residenceRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Residence{only}, nil)
	fx.directorRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Director{}, nil)

	comparison, err := fx.service.Compare(ctx, []uuid.UUID{only.ID, uuid.New()})

	require.Error(t, err)
	assert.Nil(t, comparison)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientSelection)
}

func TestCatalogService_Nearby_OrdersByDistance(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	// Plaza Independencia as origin; Punta del Este is much farther than Pocitos.
	pocitos := catalogResidence("Residencial Pocitos", "Montevideo", false)
	pocitos.Coordinates = entity.Coordinates{Lat: -34.9145, Lng: -56.1527}
	puntaDelEste := catalogResidence("Hogar Punta del Este", "Punta del Este", false)
	puntaDelEste.Coordinates = entity.Coordinates{Lat: -34.9608, Lng: -54.9433}
	unlocated := catalogResidence("Sin coordenadas", "Rivera", false)

	fx.residenceRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Residence{puntaDelEste, pocitos, unlocated}, nil)
	fx.directorRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Director{}, nil)

	result, err := fx.service.Nearby(ctx, -34.9066, -56.2015, 10)

	require.NoError(t, err)
	require.Len(t, result, 2, "residences without coordinates are skipped")
	assert.Equal(t, pocitos.ID, result[0].ID)
	assert.Equal(t, puntaDelEste.ID, result[1].ID)
}

func TestCatalogService_Nearby_Limit(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	pocitos := catalogResidence("Residencial Pocitos", "Montevideo", false)
	pocitos.Coordinates = entity.Coordinates{Lat: -34.9145, Lng: -56.1527}
	puntaDelEste := catalogResidence("Hogar Punta del Este", "Punta del Este", false)
	puntaDelEste.Coordinates = entity.Coordinates{Lat: -34.9608, Lng: -54.9433}

	fx.residenceRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Residence{puntaDelEste, pocitos}, nil)
	fx.directorRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Director{}, nil)

	result, err := fx.service.Nearby(ctx, -34.9066, -56.2015, 1)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, pocitos.ID, result[0].ID)
}

func TestCatalogService_ResidenceQR(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	residence := catalogResidence("Hogar Los Tilos", "Montevideo", false)
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.residenceRepo.EXPECT().FindByID(ctx, residence.ID).Return(residence, nil)
	fx.qrService.EXPECT().GenerateResidenceQR(residence.ID).Return(png, nil)

	result, err := fx.service.ResidenceQR(ctx, residence.ID)

	require.NoError(t, err)
	assert.Equal(t, png, result)
}
