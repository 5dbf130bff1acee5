package impl

import (
	"context"
	"log/slog"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager     repository.TransactionManager
	favoriteRepo  repository.FavoriteRepository
	residenceRepo repository.ResidenceRepository
	logger        *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	txManager repository.TransactionManager,
	favoriteRepo repository.FavoriteRepository,
	residenceRepo repository.ResidenceRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:     txManager,
		favoriteRepo:  favoriteRepo,
		residenceRepo: residenceRepo,
		logger:        logger,
	}
}

// ListFavorites returns the user's favorited residences in name order.
// Favorites whose residence disappeared are skipped, not surfaced as errors.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Residence, error) {
	ids, err := srv.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorited := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		favorited[id] = struct{}{}
	}

	all, err := srv.residenceRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list residences")
	}

	residences := make([]*entity.Residence, 0, len(ids))

	for _, residence := range all {
		if _, ok := favorited[residence.ID]; !ok {
			continue
		}

		decorate(residence)
		residences = append(residences, residence)
	}

	return residences, nil
}

// Toggle flips membership atomically and returns the resulting state, so
// two rapid toggles settle on the server's answer rather than the client's
// guess.
func (srv *favoriteService) Toggle(ctx context.Context, userID, residenceID uuid.UUID) (bool, error) {
	if _, err := srv.residenceRepo.FindByID(ctx, residenceID); err != nil {
		if errors.Is(err, repository.ErrResidenceNotFound) {
			return false, errors.Wrap(repository.ErrResidenceNotFound, "cannot favorite a missing residence")
		}

		return false, errors.Wrap(err, "failed to find residence")
	}

	var nowFavorite bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.NewFavoriteRepository()

		exists, err := favoriteRepo.Exists(ctx, userID, residenceID)
		if err != nil {
			return errors.Wrap(err, "failed to check favorite")
		}

		if exists {
			if err := favoriteRepo.Remove(ctx, userID, residenceID); err != nil {
				return errors.Wrap(err, "failed to remove favorite")
			}
			nowFavorite = false

			return nil
		}

		if err := favoriteRepo.Add(ctx, userID, residenceID); err != nil {
			return errors.Wrap(err, "failed to add favorite")
		}
		nowFavorite = true

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to toggle favorite")
	}

	return nowFavorite, nil
}

// IsFavorite reports current membership.
func (srv *favoriteService) IsFavorite(ctx context.Context, userID, residenceID uuid.UUID) (bool, error) {
	exists, err := srv.favoriteRepo.Exists(ctx, userID, residenceID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return exists, nil
}
