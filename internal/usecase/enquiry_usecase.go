package usecase

import (
	"context"

	"directorio/internal/domain/entity"
)

// EnquiryUsecase receives contact enquiries from the public site. Persisting
// the enquiry is the contract; the follow-up lead event is best effort.
type EnquiryUsecase interface {
	// Submit validates and stores the enquiry, then publishes a lead event.
	// A publish failure is logged and does not fail the submission.
	Submit(ctx context.Context, enquiry *entity.ContactEnquiry) error
}
