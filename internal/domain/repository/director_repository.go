// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// DirectorRepository defines persistence operations for residence directors.
type DirectorRepository interface {
	// FindAll retrieves every director row ordered by display_order ascending,
	// for batch grouping against the residence list.
	FindAll(ctx context.Context) ([]*entity.Director, error)

	// FindByResidence retrieves one residence's directors ordered by
	// display_order ascending.
	FindByResidence(ctx context.Context, residenceID uuid.UUID) ([]*entity.Director, error)

	// ReplaceForResidence replaces the full director list of a residence,
	// assigning display_order from slice position.
	ReplaceForResidence(ctx context.Context, residenceID uuid.UUID, directors []*entity.Director) error
}
