package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"directorio/config"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// enquiryService implements the EnquiryUsecase interface.
type enquiryService struct {
	enquiryRepo   repository.EnquiryRepository
	residenceRepo repository.ResidenceRepository
	publisher     service.LeadPublisher
	siteBaseURL   string
	logger        *slog.Logger
}

// NewEnquiryService is the constructor for enquiryService.
func NewEnquiryService(
	enquiryRepo repository.EnquiryRepository,
	residenceRepo repository.ResidenceRepository,
	publisher service.LeadPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EnquiryUsecase {
	return &enquiryService{
		enquiryRepo:   enquiryRepo,
		residenceRepo: residenceRepo,
		publisher:     publisher,
		siteBaseURL:   cfg.Site.BaseURL,
		logger:        logger,
	}
}

// Submit validates and stores the enquiry, then publishes a lead event for
// association staff. Publishing is best effort: the enquiry is already
// persisted, so a broker outage must not turn into a user-facing error.
func (srv *enquiryService) Submit(ctx context.Context, enquiry *entity.ContactEnquiry) error {
	enquiry.Name = strings.TrimSpace(enquiry.Name)
	enquiry.Email = strings.TrimSpace(enquiry.Email)
	enquiry.Message = strings.TrimSpace(enquiry.Message)

	if enquiry.Name == "" || enquiry.Email == "" || enquiry.Message == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "name, email and message are required")
	}

	if enquiry.ID == uuid.Nil {
		enquiry.ID = uuid.New()
	}
	enquiry.CreatedAt = time.Now()

	event := &service.LeadEvent{
		EnquiryID: enquiry.ID.String(),
		Name:      enquiry.Name,
		Email:     enquiry.Email,
		Phone:     enquiry.Phone,
		Message:   enquiry.Message,
	}

	// An enquiry may reference a residence; resolve it for the event so
	// staff see which residence the family asked about.
	if enquiry.ResidenceID != nil {
		residence, err := srv.residenceRepo.FindByID(ctx, *enquiry.ResidenceID)
		if err != nil {
			if !errors.Is(err, repository.ErrResidenceNotFound) {
				return errors.Wrap(err, "failed to resolve residence")
			}

			// A stale reference does not invalidate the enquiry itself.
			enquiry.ResidenceID = nil
		} else {
			event.ResidenceID = residence.ID.String()
			event.ResidenceName = residence.Name
			event.ResidenceURL = fmt.Sprintf("%s/residencias/%s", srv.siteBaseURL, residence.ID)
		}
	}

	if err := srv.enquiryRepo.Create(ctx, enquiry); err != nil {
		return errors.Wrap(err, "failed to store enquiry")
	}

	if err := srv.publisher.PublishLeadEvent(ctx, event); err != nil {
		srv.logger.Warn("Lead event publish failed", "enquiryID", enquiry.ID, "error", err)
	}

	return nil
}
