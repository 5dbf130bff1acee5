package qrcode

import (
	"fmt"
	"strings"

	"directorio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	siteBaseURL          string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance. Generated codes
// encode the public residence page URL so any phone camera can open it.
func NewQRCodeService(siteBaseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		siteBaseURL:          strings.TrimRight(siteBaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateResidenceQR renders a PNG QR code for the residence's public page.
func (s *qrcodeService) GenerateResidenceQR(residenceID uuid.UUID) ([]byte, error) {
	pageURL := s.ResidenceURL(residenceID)

	qrCode, err := qrcode.New(pageURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ResidenceURL builds the public page URL a residence QR code points at.
func (s *qrcodeService) ResidenceURL(residenceID uuid.UUID) string {
	return fmt.Sprintf("%s/residencias/%s", s.siteBaseURL, residenceID)
}
