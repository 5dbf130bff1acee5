package qrcode

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://directorio.example.uy", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateResidenceQR(t *testing.T) {
	service := NewQRCodeService("https://directorio.example.uy", 256, "M")
	residenceID := uuid.New()

	qrBytes, err := service.GenerateResidenceQR(residenceID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateResidenceQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://directorio.example.uy", tt.size, "M")
			residenceID := uuid.New()

			qrBytes, err := service.GenerateResidenceQR(residenceID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ResidenceURL(t *testing.T) {
	residenceID := uuid.New()

	tests := []struct {
		name    string
		baseURL string
	}{
		{"Without trailing slash", "https://directorio.example.uy"},
		{"With trailing slash", "https://directorio.example.uy/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.baseURL, 256, "M").(*qrcodeService)

			pageURL := service.ResidenceURL(residenceID)
			assert.Equal(t, fmt.Sprintf("https://directorio.example.uy/residencias/%s", residenceID), pageURL)
		})
	}
}
