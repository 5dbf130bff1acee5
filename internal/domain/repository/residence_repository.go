// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResidenceNotFound is a domain-specific error returned when a residence is not found.
var ErrResidenceNotFound = errors.New("residence not found")

// ResidenceRepository defines the standard operations for residence persistence.
// Directors are owned by the residence but loaded separately through
// DirectorRepository; implementations return residences without the join.
type ResidenceRepository interface {
	// FindAll retrieves every residence row ordered by name ascending,
	// including hidden ones. Visibility filtering is an application concern.
	FindAll(ctx context.Context) ([]*entity.Residence, error)

	// FindByID retrieves a single residence by its unique ID, hidden or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Residence, error)

	// Create persists a new residence entity to the storage.
	Create(ctx context.Context, residence *entity.Residence) error

	// Update writes the full residence document back (last write wins).
	Update(ctx context.Context, residence *entity.Residence) error

	// Delete removes a residence; directors cascade at the store level.
	Delete(ctx context.Context, id uuid.UUID) error

	// DistinctProvinces returns the sorted distinct non-empty provinces of
	// visible residences.
	DistinctProvinces(ctx context.Context) ([]string, error)

	// DistinctCities returns the sorted distinct non-empty cities of visible
	// residences.
	DistinctCities(ctx context.Context) ([]string, error)
}
