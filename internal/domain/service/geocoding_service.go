package service

import (
	"context"
	"errors"

	"directorio/internal/domain/entity"
)

// ErrAddressNotGeocodable is returned when the geocoder cannot resolve an address.
var ErrAddressNotGeocodable = errors.New("address could not be geocoded")

// GeocodingService resolves a postal address to geographic coordinates.
// Consumed only by the admin save routine; failures never block a save.
type GeocodingService interface {
	// Geocode resolves address/city/province to coordinates.
	Geocode(ctx context.Context, address, city, province string) (entity.Coordinates, error)
}
