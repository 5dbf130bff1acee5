// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResidenceType classifies the ownership model of a residence.
type ResidenceType string

const (
	// ResidencePublica is a publicly run residence.
	ResidencePublica ResidenceType = "publica"
	// ResidencePrivada is a privately run residence.
	ResidencePrivada ResidenceType = "privada"
	// ResidenceConcertada is a mixed public/private residence.
	ResidenceConcertada ResidenceType = "concertada"
)

// IsValid checks if the ResidenceType is a valid value.
func (t ResidenceType) IsValid() bool {
	switch t {
	case ResidencePublica, ResidencePrivada, ResidenceConcertada:
		return true
	default:
		return false
	}
}

// Coordinates is a geographic point in WGS84.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StaffRatio describes the staff-to-resident ratio of a residence.
// A nil StaffRatio means the residence has not published one.
type StaffRatio struct {
	Ratio       string   `json:"ratio"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// Residence is the central read model of the directory: one elder-care residence
// with its descriptive, commercial and contact data. All list fields are ordered
// sequences; insertion order is meaningful (Images[0] is the cover image) and is
// preserved end to end. Lists are never nil at the repository boundary.
type Residence struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	// SecondaryName is an optional alternative or legal name.
	SecondaryName string        `json:"secondary_name,omitempty"`
	Type          ResidenceType `json:"type"`
	City          string        `json:"city"`
	Province      string        `json:"province"`
	Address       string        `json:"address"`
	Description   string        `json:"description"`

	Image     string   `json:"image"`
	Images    []string `json:"images"`
	LogoURL   string   `json:"logo_url,omitempty"`
	VideoURLs []string `json:"video_urls"`

	Price      float64 `json:"price"`
	PriceRange string  `json:"price_range"` // display label, independent of Price
	Capacity   int     `json:"capacity"`

	// Rating is a legacy free-form quality number; it only feeds the rating-desc sort.
	Rating float64 `json:"rating"`
	// Transparency is derived from TransparencyScore on every read. Never stored.
	Transparency int `json:"transparency"`

	Services       []string `json:"services"`
	Facilities     []string `json:"facilities"`
	Activities     []string `json:"activities"`
	Certifications []string `json:"certifications"`
	StayTypes      []string `json:"stay_types"`
	Admissions     []string `json:"admissions"`

	Phone               string   `json:"phone"`
	Email               string   `json:"email"`
	Whatsapp            string   `json:"whatsapp"`
	Emails              []string `json:"emails"`
	AdditionalPhones    []string `json:"additional_phones"`
	AdditionalWhatsapps []string `json:"additional_whatsapps"`
	AdditionalAddresses []string `json:"additional_addresses"`
	AdditionalCities    []string `json:"additional_cities"`

	Website   string `json:"website,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Schedule  string `json:"schedule"`
	MapsURL   string `json:"maps_url,omitempty"`

	RedIntegra bool `json:"red_integra"`
	// IsHidden excludes the residence from every public list surface.
	// Admin reads and direct by-id reads still see it.
	IsHidden bool `json:"is_hidden"`

	Coordinates       Coordinates `json:"coordinates"`
	FireCertification string      `json:"fire_certification,omitempty"`
	StaffRatio        *StaffRatio `json:"staff_ratio,omitempty"`

	// Directors are ordered by their display order.
	Directors []*Director `json:"directors"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Director is a member of a residence's technical or management staff,
// owned by exactly one residence. DisplayOrder controls presentation sequence.
type Director struct {
	ID           uuid.UUID `json:"id"`
	ResidenceID  uuid.UUID `json:"residence_id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
}

// Clone returns a deep copy. Edits on the copy never reach the original,
// which makes it safe to hand drafts across goroutines.
func (r *Residence) Clone() *Residence {
	if r == nil {
		return nil
	}

	clone := *r

	for src, dst := range map[*[]string]*[]string{
		&r.Images: &clone.Images, &r.VideoURLs: &clone.VideoURLs,
		&r.Services: &clone.Services, &r.Facilities: &clone.Facilities,
		&r.Activities: &clone.Activities, &r.Certifications: &clone.Certifications,
		&r.StayTypes: &clone.StayTypes, &r.Admissions: &clone.Admissions,
		&r.Emails: &clone.Emails, &r.AdditionalPhones: &clone.AdditionalPhones,
		&r.AdditionalWhatsapps: &clone.AdditionalWhatsapps,
		&r.AdditionalAddresses: &clone.AdditionalAddresses,
		&r.AdditionalCities: &clone.AdditionalCities,
	} {
		if *src != nil {
			*dst = append([]string(nil), *src...)
		}
	}

	if r.StaffRatio != nil {
		ratio := *r.StaffRatio
		if ratio.Categories != nil {
			ratio.Categories = append([]string(nil), ratio.Categories...)
		}
		clone.StaffRatio = &ratio
	}

	if r.Directors != nil {
		clone.Directors = make([]*Director, len(r.Directors))
		for i, director := range r.Directors {
			copied := *director
			clone.Directors[i] = &copied
		}
	}

	return &clone
}

// NormalizeLists replaces nil list fields with empty slices so callers can rely
// on lists never being nil.
func (r *Residence) NormalizeLists() {
	for _, list := range []*[]string{
		&r.Images, &r.VideoURLs,
		&r.Services, &r.Facilities, &r.Activities, &r.Certifications,
		&r.StayTypes, &r.Admissions, &r.Emails,
		&r.AdditionalPhones, &r.AdditionalWhatsapps,
		&r.AdditionalAddresses, &r.AdditionalCities,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
	if r.Directors == nil {
		r.Directors = []*Director{}
	}
}

// NormalizeStaffRatio trims the staff ratio fields and drops empty category
// entries. A blank ratio clears the whole structure.
func (r *Residence) NormalizeStaffRatio() {
	if r.StaffRatio == nil {
		return
	}

	ratio := strings.TrimSpace(r.StaffRatio.Ratio)
	if ratio == "" {
		r.StaffRatio = nil

		return
	}

	categories := make([]string, 0, len(r.StaffRatio.Categories))
	for _, category := range r.StaffRatio.Categories {
		if trimmed := strings.TrimSpace(category); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}

	r.StaffRatio = &StaffRatio{
		Ratio:       ratio,
		Description: strings.TrimSpace(r.StaffRatio.Description),
		Categories:  categories,
	}
}
