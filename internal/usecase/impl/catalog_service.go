// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sort"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	residenceRepo repository.ResidenceRepository
	directorRepo  repository.DirectorRepository
	qrService     service.QRCodeService
	logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	residenceRepo repository.ResidenceRepository,
	directorRepo repository.DirectorRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		residenceRepo: residenceRepo,
		directorRepo:  directorRepo,
		qrService:     qrService,
		logger:        logger,
	}
}

// loadVisible builds the public read model: directors joined in display order,
// lists normalized and transparency recomputed, hidden residences excluded.
func (srv *catalogService) loadVisible(ctx context.Context) ([]*entity.Residence, error) {
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

	visible := make([]*entity.Residence, 0, len(all))

	for _, residence := range all {
		if residence.IsHidden {
			continue
		}

		residence.Directors = byResidence[residence.ID]
		decorate(residence)
		visible = append(visible, residence)
	}

	return visible, nil
}

// decorate finishes a residence for reading. Transparency is never stored,
// so every read path recomputes it here.
func decorate(residence *entity.Residence) {
	residence.NormalizeLists()
	residence.Transparency = entity.TransparencyScore(residence)
}

// ListResidences returns all visible residences in name order.
func (srv *catalogService) ListResidences(ctx context.Context) ([]*entity.Residence, error) {
	return srv.loadVisible(ctx)
}

// SearchResidences runs the filter/sort pipeline over the visible list.
func (srv *catalogService) SearchResidences(ctx context.Context, spec entity.FilterSpec) ([]*entity.Residence, error) {
	visible, err := srv.loadVisible(ctx)
	if err != nil {
		return nil, err
	}

	return entity.ApplyFilter(visible, spec), nil
}

// GetResidence returns one residence by id, hidden or not, so shared links
// and the admin preview keep working after a residence is hidden.
func (srv *catalogService) GetResidence(ctx context.Context, id uuid.UUID) (*entity.Residence, error) {
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

// ListProvinces returns the sorted distinct provinces of visible residences.
func (srv *catalogService) ListProvinces(ctx context.Context) ([]string, error) {
	provinces, err := srv.residenceRepo.DistinctProvinces(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provinces")
	}

	return provinces, nil
}

// ListCities returns the sorted distinct cities of visible residences.
func (srv *catalogService) ListCities(ctx context.Context) ([]string, error) {
	cities, err := srv.residenceRepo.DistinctCities(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	return cities, nil
}

// Compare re-resolves the selection against the visible list. Ids that were
// deleted or hidden since the client selected them are dropped silently; the
// comparison keeps the caller's order for the survivors.
func (srv *catalogService) Compare(ctx context.Context, ids []uuid.UUID) (*entity.Comparison, error) {
	visible, err := srv.loadVisible(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.Residence, len(visible))
	for _, residence := range visible {
		byID[residence.ID] = residence
	}

	selection := entity.NewCompareSelection(ids)

	resolved := make([]*entity.Residence, 0, selection.Len())
	for _, id := range selection.IDs() {
		if residence, ok := byID[id]; ok {
			resolved = append(resolved, residence)
		}
	}

	if len(resolved) < entity.MinCompareSelection {
		return nil, errors.Wrap(domainerrors.ErrInsufficientSelection, "not enough residences to compare")
	}

	return entity.BuildComparison(resolved), nil
}

// Nearby returns up to limit visible residences ordered by distance from the
// given point. Residences without coordinates are skipped.
func (srv *catalogService) Nearby(ctx context.Context, lat, lng float64, limit int) ([]*entity.Residence, error) {
	visible, err := srv.loadVisible(ctx)
	if err != nil {
		return nil, err
	}

	origin := orb.Point{lng, lat}

	type candidate struct {
		residence *entity.Residence
		distance  float64
	}

	candidates := make([]candidate, 0, len(visible))

	for _, residence := range visible {
		coords := residence.Coordinates
		if coords.Lat == 0 && coords.Lng == 0 {
			continue
		}

		point := orb.Point{coords.Lng, coords.Lat}
		candidates = append(candidates, candidate{
			residence: residence,
			distance:  geo.Distance(origin, point),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if limit <= 0 || limit > len(candidates) {
		limit = len(candidates)
	}

	nearby := make([]*entity.Residence, 0, limit)
	for _, c := range candidates[:limit] {
		nearby = append(nearby, c.residence)
	}

	return nearby, nil
}

// ResidenceQR renders a PNG QR code for the residence's public page.
func (srv *catalogService) ResidenceQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.residenceRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrResidenceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrResidenceNotFound, "residence not found")
		}

		return nil, errors.Wrap(err, "failed to find residence")
	}

	png, err := srv.qrService.GenerateResidenceQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate qr code")
	}

	return png, nil
}
