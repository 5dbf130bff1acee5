package handler

import (
	"log/slog"
	"net/http"

	"directorio/internal/delivery/http/middleware"
	"directorio/internal/delivery/http/response"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler serves the authenticated user's saved residences.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListFavorites returns the user's favorited residences.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión requerida")
	}

	residences, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, residences, "")
}

// Toggle flips favorite membership and returns the resulting state.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión requerida")
	}

	residenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	favorited, err := h.uc.Toggle(c.Request().Context(), userID, residenceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favorited}, "")
}

// IsFavorite reports whether the residence is in the user's favorites.
func (h *FavoriteHandler) IsFavorite(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Sesión requerida")
	}

	residenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	favorited, err := h.uc.IsFavorite(c.Request().Context(), userID, residenceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favorited}, "")
}
