// Package location resolves where the user stands, either from typed
// coordinates or from a device location capability.
package location

import (
	"context"
	"math"
	"strconv"
	"strings"

	"planet-distance/models"
)

// Source tells where a pair of coordinates came from.
type Source string

const (
	SourceManual Source = "manual"
	SourceDevice Source = "device"
)

// DeviceLocator reports the current position of the device. Implementations
// return an error when access is denied or the position is unavailable.
type DeviceLocator interface {
	Locate(ctx context.Context) (models.Coordinates, error)
}

// Request is what the page's input controls hold at calculation time.
type Request struct {
	UseDevice bool
	Text      string
}

// Resolver produces one pair of coordinates per request.
type Resolver struct {
	device DeviceLocator
}

// NewResolver returns a Resolver. A nil device means the platform has no
// location capability at all.
func NewResolver(device DeviceLocator) *Resolver {
	return &Resolver{device: device}
}

// Resolve returns the user's coordinates. Manual input settles at once; a
// device request blocks until the locator answers or ctx ends.
func (r *Resolver) Resolve(ctx context.Context, req Request) (models.Coordinates, Source, error) {
	if !req.UseDevice {
		c, err := ParseCoordinates(req.Text)
		return c, SourceManual, err
	}
	if r.device == nil {
		return models.Coordinates{}, SourceDevice, &UnsupportedError{}
	}
	c, err := r.device.Locate(ctx)
	if err != nil {
		return models.Coordinates{}, SourceDevice, &PermissionOrUnavailableError{Err: err}
	}
	return c, SourceDevice, nil
}

// ParseCoordinates reads "lat, lon". Exactly two comma separated finite
// numbers are accepted; whitespace around each number is ignored and a blank
// part counts as 0.
func ParseCoordinates(text string) (models.Coordinates, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return models.Coordinates{}, &ValidationError{Input: text}
	}
	var vals [2]float64
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return models.Coordinates{}, &ValidationError{Input: text}
		}
		vals[i] = v
	}
	return models.Coordinates{Latitude: vals[0], Longitude: vals[1]}, nil
}
