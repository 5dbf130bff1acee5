// Package model holds the GORM persistence structs. They mirror tables, not
// domain entities; mapping lives next to the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// StaffRatioData is the jsonb payload of the staff_ratio column.
type StaffRatioData struct {
	Ratio       string   `json:"ratio"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// ResidenceModel mirrors the 'residences' table. PostgreSQL generates UUIDs
// via uuid_generate_v7(). List fields live in jsonb columns because they are
// always read and written as a whole with the residence; only directors get
// their own table. The transparency score is never stored, it is derived on
// every read.
type ResidenceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	SecondaryName string    `gorm:"type:varchar(255)"`
	Type          string    `gorm:"type:varchar(20)"`
	City          string    `gorm:"type:varchar(120);index"`
	Province      string    `gorm:"type:varchar(120);index"`
	Address       string    `gorm:"type:varchar(255)"`
	Description   string    `gorm:"type:text"`

	Image     string   `gorm:"type:text"`
	Images    []string `gorm:"serializer:json;type:jsonb"`
	LogoURL   string   `gorm:"type:text"`
	VideoURLs []string `gorm:"serializer:json;type:jsonb"`

	Price      float64 `gorm:"type:decimal(12,2)"`
	PriceRange string  `gorm:"type:varchar(100)"`
	Capacity   int
	Rating     float64 `gorm:"type:decimal(4,2)"`

	Services       []string `gorm:"serializer:json;type:jsonb"`
	Facilities     []string `gorm:"serializer:json;type:jsonb"`
	Activities     []string `gorm:"serializer:json;type:jsonb"`
	Certifications []string `gorm:"serializer:json;type:jsonb"`
	StayTypes      []string `gorm:"serializer:json;type:jsonb"`
	Admissions     []string `gorm:"serializer:json;type:jsonb"`

	Phone               string   `gorm:"type:varchar(50)"`
	Email               string   `gorm:"type:varchar(255)"`
	Whatsapp            string   `gorm:"type:varchar(50)"`
	Emails              []string `gorm:"serializer:json;type:jsonb"`
	AdditionalPhones    []string `gorm:"serializer:json;type:jsonb"`
	AdditionalWhatsapps []string `gorm:"serializer:json;type:jsonb"`
	AdditionalAddresses []string `gorm:"serializer:json;type:jsonb"`
	AdditionalCities    []string `gorm:"serializer:json;type:jsonb"`

	Website   string `gorm:"type:text"`
	Facebook  string `gorm:"type:text"`
	Instagram string `gorm:"type:text"`
	Schedule  string `gorm:"type:varchar(255)"`
	MapsURL   string `gorm:"type:text"`

	RedIntegra bool `gorm:"not null;default:false"`
	IsHidden   bool `gorm:"not null;default:true;index"`

	Latitude          float64 `gorm:"type:decimal(10,7)"`
	Longitude         float64 `gorm:"type:decimal(10,7)"`
	FireCertification string  `gorm:"type:varchar(255)"`

	StaffRatio *StaffRatioData `gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Directors []DirectorModel `gorm:"foreignKey:ResidenceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ResidenceModel) TableName() string {
	return "residences"
}

// DirectorModel mirrors the 'residence_directors' table. Rows are replaced
// wholesale on save; display_order comes from list position.
type DirectorModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ResidenceID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(255)"`
	PhotoURL     string    `gorm:"type:text"`
	DisplayOrder int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (DirectorModel) TableName() string {
	return "residence_directors"
}
