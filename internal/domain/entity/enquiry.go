// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactEnquiry is a lead left through the public contact flow, optionally
// tied to one residence.
type ContactEnquiry struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Message     string     `json:"message"`
	ResidenceID *uuid.UUID `json:"residence_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
