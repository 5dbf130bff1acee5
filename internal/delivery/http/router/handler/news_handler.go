package handler

import (
	"log/slog"
	"net/http"

	"directorio/internal/delivery/http/response"
	"directorio/internal/domain/entity"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsHandler serves association news: the published feed publicly and the
// full set through the admin surface.
type NewsHandler struct {
	uc     usecase.NewsUsecase
	logger *slog.Logger
}

// NewNewsHandler is the constructor for NewsHandler, injected by Fx.
func NewNewsHandler(uc usecase.NewsUsecase, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPublished returns the public news feed.
func (h *NewsHandler) ListPublished(c echo.Context) error {
	posts, err := h.uc.ListPublished(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

// GetPublished returns one published post.
func (h *NewsHandler) GetPublished(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de noticia inválido")
	}

	post, err := h.uc.GetPublished(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// ListAll returns every post for the back office.
func (h *NewsHandler) ListAll(c echo.Context) error {
	posts, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

type newsInput struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body"`
	CoverURL  string `json:"coverUrl"`
	Published bool   `json:"published"`
}

// Create stores a new post.
func (h *NewsHandler) Create(c echo.Context) error {
	var input newsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de la noticia inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Create(c.Request().Context(), &entity.NewsPost{
		Title:     input.Title,
		Body:      input.Body,
		CoverURL:  input.CoverURL,
		Published: input.Published,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Noticia creada")
}

// Update rewrites an existing post.
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de noticia inválido")
	}

	var input newsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de la noticia inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Update(c.Request().Context(), &entity.NewsPost{
		ID:        id,
		Title:     input.Title,
		Body:      input.Body,
		CoverURL:  input.CoverURL,
		Published: input.Published,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Noticia actualizada")
}

// Delete removes a post.
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de noticia inválido")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Noticia eliminada")
}
