package usecase

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase manages a user's saved residences. Membership is settled
// server-side: Toggle returns the resulting state so clients never have to
// guess after a race.
type FavoriteUsecase interface {
	// ListFavorites returns the user's favorited residences in name order.
	// Favorites pointing at deleted residences are skipped.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Residence, error)

	// Toggle flips membership and returns true when the residence is now a
	// favorite.
	Toggle(ctx context.Context, userID, residenceID uuid.UUID) (bool, error)

	// IsFavorite reports current membership.
	IsFavorite(ctx context.Context, userID, residenceID uuid.UUID) (bool, error)
}
