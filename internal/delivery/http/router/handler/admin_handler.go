package handler

import (
	"log/slog"
	"net/http"

	"directorio/internal/delivery/http/response"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves the back office: residence lifecycle, media uploads
// and enquiry review. Draft editing has its own handler.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListResidences returns every residence, hidden included.
func (h *AdminHandler) ListResidences(c echo.Context) error {
	residences, err := h.uc.ListResidences(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, residences, "")
}

// GetResidence returns one residence for editing.
func (h *AdminHandler) GetResidence(c echo.Context) error {
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

type createResidenceInput struct {
	Name string `json:"name" validate:"required"`
}

// CreateResidence creates a hidden residence ready for editing.
func (h *AdminHandler) CreateResidence(c echo.Context) error {
	var input createResidenceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de la residencia inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	residence, err := h.uc.CreateResidence(c.Request().Context(), input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, residence, "Residencia creada")
}

// DeleteResidence removes a residence and everything hanging off it.
func (h *AdminHandler) DeleteResidence(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de residencia inválido")
	}

	if err := h.uc.DeleteResidence(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Residencia eliminada")
}

// UploadMedia stores an uploaded file and returns its public URL. The file
// arrives as multipart form data under the "file" field; an optional "folder"
// field groups objects in the bucket.
func (h *AdminHandler) UploadMedia(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Falta el archivo a subir")
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "media"
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.uc.UploadMedia(c.Request().Context(), folder, fileHeader.Filename, contentType, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Archivo subido")
}

// ListEnquiries returns all contact enquiries, newest first.
func (h *AdminHandler) ListEnquiries(c echo.Context) error {
	enquiries, err := h.uc.ListEnquiries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, enquiries, "")
}
