package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactEnquiryModel mirrors the 'contact_enquiries' table. The residence
// reference is nullable: general enquiries carry none, and the row outlives
// the residence it pointed at.
type ContactEnquiryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Email       string     `gorm:"type:varchar(255);not null"`
	Phone       string     `gorm:"type:varchar(50)"`
	Message     string     `gorm:"type:text;not null"`
	ResidenceID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ContactEnquiryModel) TableName() string {
	return "contact_enquiries"
}
