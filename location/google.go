package location

import (
	"context"
	"errors"
	"fmt"

	maps "googlemaps.github.io/maps"

	"planet-distance/models"
)

// geolocater is the part of *maps.Client the locator needs.
type geolocater interface {
	Geolocate(ctx context.Context, r *maps.GeolocationRequest) (*maps.GeolocationResult, error)
}

// GoogleLocator asks the Google Maps Geolocation API where the caller is,
// based on the IP address the request comes from.
type GoogleLocator struct {
	client geolocater
}

// NewGoogleLocator builds a locator with the given API key.
func NewGoogleLocator(apiKey string) (*GoogleLocator, error) {
	if apiKey == "" {
		return nil, errors.New("google locator: empty API key")
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps.NewClient: %w", err)
	}
	return &GoogleLocator{client: client}, nil
}

// Locate implements DeviceLocator.
func (g *GoogleLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	resp, err := g.client.Geolocate(ctx, &maps.GeolocationRequest{ConsiderIP: true})
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("geolocate: %w", err)
	}
	if resp == nil {
		return models.Coordinates{}, errors.New("geolocate: empty response")
	}
	return models.Coordinates{
		Latitude:  resp.Location.Lat,
		Longitude: resp.Location.Lng,
	}, nil
}

// StaticLocator always reports the same position.
type StaticLocator models.Coordinates

// Locate implements DeviceLocator.
func (s StaticLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}
	return models.Coordinates(s), nil
}

// LocatorFunc adapts a function to DeviceLocator.
type LocatorFunc func(ctx context.Context) (models.Coordinates, error)

// Locate calls f.
func (f LocatorFunc) Locate(ctx context.Context) (models.Coordinates, error) {
	return f(ctx)
}
