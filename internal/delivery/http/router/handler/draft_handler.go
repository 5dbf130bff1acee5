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

// DraftHandler exposes the server-side editing sessions of the back office.
type DraftHandler struct {
	uc     usecase.DraftUsecase
	logger *slog.Logger
}

// NewDraftHandler is the constructor for DraftHandler, injected by Fx.
func NewDraftHandler(uc usecase.DraftUsecase, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{
		uc:     uc,
		logger: logger,
	}
}

func residenceParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// Open starts (or returns) the editing session for a residence.
func (h *DraftHandler) Open(c echo.Context) error {
	id, err := residenceParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	status, err := h.uc.Open(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// Status returns the session state without touching it.
func (h *DraftHandler) Status(c echo.Context) error {
	id, err := residenceParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	status, err := h.uc.Status(id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// Update replaces the draft document with the submitted one.
func (h *DraftHandler) Update(c echo.Context) error {
	id, err := residenceParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	var draft entity.Residence
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Borrador inválido")
	}

	status, err := h.uc.Update(id, &draft)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// EditList applies a structural edit to one of the draft's list fields.
func (h *DraftHandler) EditList(c echo.Context) error {
	id, err := residenceParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	var op usecase.ListOp
	if err := c.Bind(&op); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Operación de lista inválida")
	}
	if err := c.Validate(&op); err != nil {
		return errors.WithStack(err)
	}

	status, err := h.uc.EditList(id, c.Param("field"), op)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

type sideChannelInput struct {
	Values []string `json:"values"`
}

// SetSideChannel stages contact lists managed outside the main form.
func (h *DraftHandler) SetSideChannel(c echo.Context) error {
	id, err := residenceParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	var input sideChannelInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Lista de contacto inválida")
	}

	// A null values field still overwrites with an empty list.
	values := input.Values
	if values == nil {
		values = []string{}
	}

	status, err := h.uc.SetSideChannel(id, c.Param("field"), values)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

type autosaveInput struct {
	Enabled bool `json:"enabled"`
}

// SetAutosave toggles the autosave timer for the session.
func (h *DraftHandler) SetAutosave(c echo.Context) error {
	id, err := residenceParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	var input autosaveInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Configuración de autoguardado inválida")
	}

	status, err := h.uc.SetAutosave(id, input.Enabled)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// Save persists the draft through the admin save pipeline.
func (h *DraftHandler) Save(c echo.Context) error {
	id, err := residenceParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	result, err := h.uc.Save(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Residencia guardada")
}

// Close discards the session and its pending edits.
func (h *DraftHandler) Close(c echo.Context) error {
	id, err := residenceParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	if err := h.uc.Close(id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sesión de edición cerrada")
}
