package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"directorio/config"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	mockRepo "directorio/internal/mocks/repository"
	mockSvc "directorio/internal/mocks/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// enquiryServiceFixtures holds all test dependencies for enquiry service tests.
type enquiryServiceFixtures struct {
	service       usecase.EnquiryUsecase
	enquiryRepo   *mockRepo.MockEnquiryRepository
	residenceRepo *mockRepo.MockResidenceRepository
	publisher     *mockSvc.MockLeadPublisher
}

func createTestEnquiryService(t *testing.T) enquiryServiceFixtures {
	enquiryRepo := mockRepo.NewMockEnquiryRepository(t)
	residenceRepo := mockRepo.NewMockResidenceRepository(t)
	publisher := mockSvc.NewMockLeadPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Site: config.SiteConfig{BaseURL: "https://directorio.example.uy"}}

	srv := NewEnquiryService(enquiryRepo, residenceRepo, publisher, cfg, logger)

	return enquiryServiceFixtures{
		service:       srv,
		enquiryRepo:   enquiryRepo,
		residenceRepo: residenceRepo,
		publisher:     publisher,
	}
}

func TestEnquiryService_Submit_PublishesLeadEvent(t *testing.T) {
	fx := createTestEnquiryService(t)
	ctx := context.Background()

	residence := &entity.Residence{ID: uuid.New(), Name: "Hogar Los Tilos"}
	residenceID := residence.ID

	enquiry := &entity.ContactEnquiry{
		Name:        "Ana Pérez",
		Email:       "ana@example.com",
		Phone:       "099123456",
		Message:     "Quisiera información sobre cupos.",
		ResidenceID: &residenceID,
	}

	fx.residenceRepo.EXPECT().FindByID(ctx, residenceID).Return(residence, nil)
	fx.enquiryRepo.EXPECT().Create(ctx, enquiry).Return(nil)
	fx.publisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		RunAndReturn(func(_ context.Context, event *service.LeadEvent) error {
			assert.Equal(t, "Ana Pérez", event.Name)
			assert.Equal(t, residence.Name, event.ResidenceName)
			assert.Equal(t,
				"https://directorio.example.uy/residencias/"+residence.ID.String(),
				event.ResidenceURL)

			return nil
		})

	err := fx.service.Submit(ctx, enquiry)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, enquiry.ID)
	assert.False(t, enquiry.CreatedAt.IsZero())
}

func TestEnquiryService_Submit_PublishFailureIsSoft(t *testing.T) {
	fx := createTestEnquiryService(t)
	ctx := context.Background()

	enquiry := &entity.ContactEnquiry{
		Name:    "Ana Pérez",
		Email:   "ana@example.com",
		Message: "Quisiera información.",
	}

	fx.enquiryRepo.EXPECT().Create(ctx, enquiry).Return(nil)
	fx.publisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		Return(errors.New("broker unavailable"))

	err := fx.service.Submit(ctx, enquiry)

	require.NoError(t, err, "the enquiry is stored; losing the event is acceptable")
}

func TestEnquiryService_Submit_ValidatesRequiredFields(t *testing.T) {
	fx := createTestEnquiryService(t)

	err := fx.service.Submit(context.Background(), &entity.ContactEnquiry{
		Name:  "Ana Pérez",
		Email: "ana@example.com",
		// message missing
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEnquiryService_Submit_StaleResidenceReferenceIsDropped(t *testing.T) {
	fx := createTestEnquiryService(t)
	ctx := context.Background()

	staleID := uuid.New()
	enquiry := &entity.ContactEnquiry{
		Name:        "Ana Pérez",
		Email:       "ana@example.com",
		Message:     "Quisiera información.",
		ResidenceID: &staleID,
	}

	fx.residenceRepo.EXPECT().FindByID(ctx, staleID).
		Return(nil, repository.ErrResidenceNotFound)
	fx.enquiryRepo.EXPECT().Create(ctx, enquiry).Return(nil)
	fx.publisher.EXPECT().
		PublishLeadEvent(ctx, mock.AnythingOfType("*service.LeadEvent")).
		RunAndReturn(func(_ context.Context, event *service.LeadEvent) error {
			assert.Empty(t, event.ResidenceID)

			return nil
		})

	err := fx.service.Submit(ctx, enquiry)

	require.NoError(t, err)
	assert.Nil(t, enquiry.ResidenceID, "the stale reference is cleared, not fatal")
}
