package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"directorio/config"
	"directorio/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGeocoder(t *testing.T, handler http.HandlerFunc) service.GeocodingService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			Endpoint:    server.URL,
			CountryCode: "uy",
			Timeout:     2 * time.Second,
		},
	}

	geocoder, err := NewNominatimGeocoder(cfg, slog.Default())
	require.NoError(t, err)

	return geocoder
}

func TestNominatimGeocoder_Geocode(t *testing.T) {
	geocoder := createTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Av. Brasil 2103, Montevideo, Montevideo", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "uy", r.URL.Query().Get("countrycodes"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "-34.9066", "lon": "-56.1601"}]`))
	})

	coords, err := geocoder.Geocode(context.Background(), "Av. Brasil 2103", "Montevideo", "Montevideo")
	require.NoError(t, err)
	assert.InDelta(t, -34.9066, coords.Lat, 0.0001)
	assert.InDelta(t, -56.1601, coords.Lng, 0.0001)
}

func TestNominatimGeocoder_Geocode_NoMatch(t *testing.T) {
	geocoder := createTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := geocoder.Geocode(context.Background(), "Calle Inexistente 9999", "Montevideo", "Montevideo")
	assert.ErrorIs(t, err, service.ErrAddressNotGeocodable)
}

func TestNominatimGeocoder_Geocode_EmptyAddress(t *testing.T) {
	geocoder := createTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty address")
	})

	_, err := geocoder.Geocode(context.Background(), "", "  ", "")
	assert.ErrorIs(t, err, service.ErrAddressNotGeocodable)
}

func TestNominatimGeocoder_Geocode_ServerError(t *testing.T) {
	geocoder := createTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := geocoder.Geocode(context.Background(), "Av. Brasil 2103", "Montevideo", "Montevideo")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "geocoder returned status 500")
}

func TestNominatimGeocoder_Geocode_MalformedCoordinates(t *testing.T) {
	geocoder := createTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "not-a-number", "lon": "-56.1601"}]`))
	})

	_, err := geocoder.Geocode(context.Background(), "Av. Brasil 2103", "Montevideo", "Montevideo")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid latitude")
}

func TestNewNominatimGeocoder_MissingEndpoint(t *testing.T) {
	_, err := NewNominatimGeocoder(&config.Config{}, slog.Default())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "geocoding endpoint is required")
}
