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

// EnquiryHandler receives contact enquiries from the public site.
type EnquiryHandler struct {
	uc     usecase.EnquiryUsecase
	logger *slog.Logger
}

// NewEnquiryHandler is the constructor for EnquiryHandler, injected by Fx.
func NewEnquiryHandler(uc usecase.EnquiryUsecase, logger *slog.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		uc:     uc,
		logger: logger,
	}
}

type enquiryInput struct {
	Name        string     `json:"name" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	Phone       string     `json:"phone"`
	Message     string     `json:"message" validate:"required"`
	ResidenceID *uuid.UUID `json:"residenceId"`
}

// Submit stores a contact enquiry and triggers the lead notification.
func (h *EnquiryHandler) Submit(c echo.Context) error {
	var input enquiryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de contacto inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	enquiry := &entity.ContactEnquiry{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Message:     input.Message,
		ResidenceID: input.ResidenceID,
	}

	if err := h.uc.Submit(c.Request().Context(), enquiry); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, enquiry, "Consulta enviada")
}
