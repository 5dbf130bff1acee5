package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"
	mockRepo "directorio/internal/mocks/repository"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service       usecase.FavoriteUsecase
	txManager     *mockRepo.MockTransactionManager
	favoriteRepo  *mockRepo.MockFavoriteRepository
	residenceRepo *mockRepo.MockResidenceRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	residenceRepo := mockRepo.NewMockResidenceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFavoriteService(txManager, favoriteRepo, residenceRepo, logger)

	return favoriteServiceFixtures{
		service:       service,
		txManager:     txManager,
		favoriteRepo:  favoriteRepo,
		residenceRepo: residenceRepo,
	}
}

// expectToggleTransaction routes the toggle through a transaction-bound
// favorite repository mock.
func expectToggleTransaction(ctx context.Context, fx favoriteServiceFixtures) *mockRepo.MockFavoriteRepository {
	txFavoriteRepo := &mockRepo.MockFavoriteRepository{}

	factory := &mockRepo.MockRepositoryFactory{}
	factory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txFavoriteRepo
}

func TestFavoriteService_Toggle_AddsWhenAbsent(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	residence := &entity.Residence{ID: uuid.New(), Name: "Hogar Los Tilos"}

	fx.residenceRepo.EXPECT().FindByID(ctx, residence.ID).Return(residence, nil)

	txFavoriteRepo := expectToggleTransaction(ctx, fx)
	txFavoriteRepo.EXPECT().Exists(ctx, userID, residence.ID).Return(false, nil)
	txFavoriteRepo.EXPECT().Add(ctx, userID, residence.ID).Return(nil)

	nowFavorite, err := fx.service.Toggle(ctx, userID, residence.ID)

	require.NoError(t, err)
	assert.True(t, nowFavorite)
}

func TestFavoriteService_Toggle_RemovesWhenPresent(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	residence := &entity.Residence{ID: uuid.New(), Name: "Hogar Los Tilos"}

	fx.residenceRepo.EXPECT().FindByID(ctx, residence.ID).Return(residence, nil)

	txFavoriteRepo := expectToggleTransaction(ctx, fx)
	txFavoriteRepo.EXPECT().Exists(ctx, userID, residence.ID).Return(true, nil)
	txFavoriteRepo.EXPECT().Remove(ctx, userID, residence.ID).Return(nil)

	nowFavorite, err := fx.service.Toggle(ctx, userID, residence.ID)

	require.NoError(t, err)
	assert.False(t, nowFavorite)
}

func TestFavoriteService_Toggle_MissingResidence(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	residenceID := uuid.New()

	fx.residenceRepo.EXPECT().FindByID(ctx, residenceID).
		Return(nil, repository.ErrResidenceNotFound)

	nowFavorite, err := fx.service.Toggle(ctx, uuid.New(), residenceID)

	require.Error(t, err)
	assert.False(t, nowFavorite)
	assert.ErrorIs(t, err, repository.ErrResidenceNotFound)
}

func TestFavoriteService_ListFavorites_SkipsDeletedResidences(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	kept := &entity.Residence{ID: uuid.New(), Name: "Hogar Los Tilos"}
	deletedID := uuid.New()

	fx.favoriteRepo.EXPECT().FindByUser(ctx, userID).
		Return([]uuid.UUID{kept.ID, deletedID}, nil)
	fx.residenceRepo.EXPECT().FindAll(ctx).
		Return([]*entity.Residence{kept}, nil)

	favorites, err := fx.service.ListFavorites(ctx, userID)

	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, kept.ID, favorites[0].ID)
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()
	residenceID := uuid.New()

	fx.favoriteRepo.EXPECT().Exists(ctx, userID, residenceID).Return(true, nil)

	isFavorite, err := fx.service.IsFavorite(ctx, userID, residenceID)

	require.NoError(t, err)
	assert.True(t, isFavorite)
}
