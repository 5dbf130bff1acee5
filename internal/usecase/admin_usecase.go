package usecase

import (
	"context"
	"io"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// SideChannel carries list fields that the editing surface manages outside
// the main form. A nil slice pointer means the field was not touched and the
// stored value wins; a non-nil pointer overwrites, even with an empty list.
type SideChannel struct {
	Phones    *[]string
	Whatsapps *[]string
	Emails    *[]string
	Addresses *[]string
	Cities    *[]string
}

// SaveResult reports what a save pipeline run actually did. Saves succeed
// even when geocoding fails; callers surface RemovedDuplicates and
// GeocodeFailed as warnings, not errors.
type SaveResult struct {
	Residence         *entity.Residence `json:"residence"`
	RemovedDuplicates []string          `json:"removedDuplicates,omitempty"`
	GeocodeUpdated    bool              `json:"geocodeUpdated"`
	GeocodeFailed     bool              `json:"geocodeFailed"`
}

// AdminUsecase is the back-office write model: residence lifecycle, the save
// pipeline, media uploads, and enquiry review.
type AdminUsecase interface {
	// ListResidences returns every residence in name order, hidden included.
	ListResidences(ctx context.Context) ([]*entity.Residence, error)

	// GetResidence returns one residence by id for editing.
	GetResidence(ctx context.Context, id uuid.UUID) (*entity.Residence, error)

	// CreateResidence creates a hidden residence with the given name and
	// empty lists, ready for editing.
	CreateResidence(ctx context.Context, name string) (*entity.Residence, error)

	// SaveResidence runs the full save pipeline: side-channel overwrite,
	// phone dedup, staff-ratio normalization, re-geocoding when the address
	// changed, then an atomic write of the residence and its directors.
	SaveResidence(ctx context.Context, draft *entity.Residence, side *SideChannel) (*SaveResult, error)

	// DeleteResidence removes a residence and its directors and favorites.
	DeleteResidence(ctx context.Context, id uuid.UUID) error

	// UploadMedia stores an uploaded file and returns its public URL.
	UploadMedia(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error)

	// ListEnquiries returns all contact enquiries, newest first.
	ListEnquiries(ctx context.Context) ([]*entity.ContactEnquiry, error)
}
