// Package geocode implements address resolution against a Nominatim
// compatible search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"directorio/config"
	"directorio/internal/domain/entity"
	"directorio/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// nominatimGeocoder implements GeocodingService over the Nominatim search API.
type nominatimGeocoder struct {
	endpoint    string
	countryCode string
	httpClient  *http.Client
	logger      *slog.Logger
}

// nominatimResult is one entry of the Nominatim search response.
// Coordinates come back as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatimGeocoder creates a geocoder from configuration.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) (service.GeocodingService, error) {
	geoCfg := cfg.Geocoding
	if geoCfg == nil || geoCfg.Endpoint == "" {
		return nil, errors.New("geocoding endpoint is required")
	}

	timeout := geoCfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &nominatimGeocoder{
		endpoint:    geoCfg.Endpoint,
		countryCode: geoCfg.CountryCode,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}, nil
}

// Geocode resolves address/city/province to coordinates. It returns
// ErrAddressNotGeocodable when the service finds no match.
func (g *nominatimGeocoder) Geocode(ctx context.Context, address, city, province string) (entity.Coordinates, error) {
	query := buildQuery(address, city, province)
	if query == "" {
		return entity.Coordinates{}, service.ErrAddressNotGeocodable
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	if g.countryCode != "" {
		params.Set("countrycodes", g.countryCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return entity.Coordinates{}, errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.Coordinates{}, errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "failed to decode geocoding response")
	}

	if len(results) == 0 {
		g.logger.Debug("Geocoder found no match",
			slog.String("query", query),
		)

		return entity.Coordinates{}, service.ErrAddressNotGeocodable
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "invalid latitude in geocoding response")
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "invalid longitude in geocoding response")
	}

	return entity.Coordinates{Lat: lat, Lng: lng}, nil
}

// buildQuery joins the non-empty address parts into one search string.
func buildQuery(parts ...string) string {
	var nonEmpty []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			nonEmpty = append(nonEmpty, trimmed)
		}
	}

	return strings.Join(nonEmpty, ", ")
}
