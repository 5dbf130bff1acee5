// Package usecase defines the application-layer interfaces. Implementations
// live in the impl subpackage.
package usecase

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase exposes the public residence catalog: the read model with
// derived transparency scores, the filter/sort pipeline, and the comparison
// view. Hidden residences never appear on list surfaces; direct by-id access
// still reaches them so shared links and the admin preview keep working.
type CatalogUsecase interface {
	// ListResidences returns all visible residences in name order, directors
	// joined and transparency computed.
	ListResidences(ctx context.Context) ([]*entity.Residence, error)

	// SearchResidences runs the filter/sort pipeline over the visible list.
	SearchResidences(ctx context.Context, spec entity.FilterSpec) ([]*entity.Residence, error)

	// GetResidence returns one residence by id, hidden or not.
	GetResidence(ctx context.Context, id uuid.UUID) (*entity.Residence, error)

	// ListProvinces returns the sorted distinct provinces of visible residences.
	ListProvinces(ctx context.Context) ([]string, error)

	// ListCities returns the sorted distinct cities of visible residences.
	ListCities(ctx context.Context) ([]string, error)

	// Compare re-resolves the selected ids against the visible list, silently
	// dropping ids that no longer resolve, and builds the comparison matrix.
	// Fewer than two resolved residences is an insufficient selection.
	Compare(ctx context.Context, ids []uuid.UUID) (*entity.Comparison, error)

	// Nearby returns up to limit visible residences ordered by distance from
	// the given point.
	Nearby(ctx context.Context, lat, lng float64, limit int) ([]*entity.Residence, error)

	// ResidenceQR renders a PNG QR code linking to the residence's public page.
	ResidenceQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
