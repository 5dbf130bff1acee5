// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteRepository defines persistence operations for per-user favorite
// residence sets.
type FavoriteRepository interface {
	// FindByUser retrieves the residence ids favorited by a user, most recent first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// Exists reports whether the user has favorited the residence.
	Exists(ctx context.Context, userID, residenceID uuid.UUID) (bool, error)

	// Add inserts the favorite; adding an existing favorite is a no-op.
	Add(ctx context.Context, userID, residenceID uuid.UUID) error

	// Remove deletes the favorite; removing a missing favorite is a no-op.
	Remove(ctx context.Context, userID, residenceID uuid.UUID) error
}
