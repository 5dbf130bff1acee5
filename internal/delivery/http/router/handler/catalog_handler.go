// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"directorio/internal/delivery/http/response"
	"directorio/internal/domain/entity"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public residence catalog.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListResidences handles the residence search. Without query parameters the
// zero filter returns the full visible catalog in name order.
func (h *CatalogHandler) ListResidences(c echo.Context) error {
	var spec entity.FilterSpec
	if err := c.Bind(&spec); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Parámetros de búsqueda inválidos")
	}

	if spec.SortBy != "" && !spec.SortBy.IsValid() {
		return response.BadRequest(c, "INVALID_SORT", "Orden de resultados inválido")
	}

	residences, err := h.uc.SearchResidences(c.Request().Context(), spec)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, residences, "")
}

// GetResidence returns one residence by id.
func (h *CatalogHandler) GetResidence(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	residence, err := h.uc.GetResidence(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, residence, "")
}

// ListProvinces returns the distinct provinces of visible residences.
func (h *CatalogHandler) ListProvinces(c echo.Context) error {
	provinces, err := h.uc.ListProvinces(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, provinces, "")
}

// ListCities returns the distinct cities of visible residences.
func (h *CatalogHandler) ListCities(c echo.Context) error {
	cities, err := h.uc.ListCities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities, "")
}

// compareInput is the request payload for the comparison view.
type compareInput struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// Compare builds the side-by-side comparison for the selected residences.
func (h *CatalogHandler) Compare(c echo.Context) error {
	var input compareInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Selección de comparación inválida")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	comparison, err := h.uc.Compare(c.Request().Context(), input.IDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comparison, "")
}

// Nearby returns the visible residences closest to a point.
func (h *CatalogHandler) Nearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Latitud inválida")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Longitud inválida")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Límite inválido")
		}
	}

	residences, err := h.uc.Nearby(c.Request().Context(), lat, lng, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, residences, "")
}

// ResidenceQR renders the PNG QR code for a residence's public page.
func (h *CatalogHandler) ResidenceQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	png, err := h.uc.ResidenceQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
