// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"directorio/internal/domain/entity"
)

// EnquiryRepository defines persistence operations for contact enquiries.
type EnquiryRepository interface {
	// Create persists a new contact enquiry.
	Create(ctx context.Context, enquiry *entity.ContactEnquiry) error

	// FindAll retrieves all enquiries, most recent first (admin surface).
	FindAll(ctx context.Context) ([]*entity.ContactEnquiry, error)
}
