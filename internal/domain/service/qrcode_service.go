package service

import "github.com/google/uuid"

// QRCodeService generates QR codes pointing at public residence pages,
// used on printed material handed out by the residences.
type QRCodeService interface {
	// GenerateResidenceQR renders a PNG QR code for the residence's public page.
	GenerateResidenceQR(residenceID uuid.UUID) ([]byte, error)
}
