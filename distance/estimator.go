// Package distance estimates how far a planet is from Earth and phrases the
// figure for people.
//
// The model is deliberately rough: planets sit still on their orbits and the
// distance between two of them is the difference of their distances from the
// Sun, shaken by up to ±10% to imitate orbital motion. The observer's place on
// Earth does not enter the computation.
package distance

import (
	"fmt"
	"math"
	"math/rand/v2"

	"planet-distance/models"
)

// Variation is the full width of the random perturbation relative to the
// base distance.
const Variation = 0.2

// RoundTo is the granularity of every estimate, in km.
const RoundTo = 1000

// RandomSource yields uniformly distributed numbers in [0, 1).
type RandomSource interface {
	Float64() float64
}

// RandFunc adapts a function to RandomSource.
type RandFunc func() float64

// Float64 calls f.
func (f RandFunc) Float64() float64 { return f() }

// Estimator computes randomized Earth-to-planet distances.
type Estimator struct {
	catalog *models.Catalog
	rnd     RandomSource
}

// NewEstimator returns an Estimator over catalog. A nil rnd uses the
// process-wide generator from math/rand/v2, which is safe for concurrent use.
func NewEstimator(catalog *models.Catalog, rnd RandomSource) *Estimator {
	if rnd == nil {
		rnd = RandFunc(rand.Float64)
	}
	return &Estimator{catalog: catalog, rnd: rnd}
}

// Base returns |target - earth| in km, the anchor of the approximation.
func (e *Estimator) Base(key string) (float64, error) {
	target, err := e.catalog.Get(key)
	if err != nil {
		return 0, fmt.Errorf("estimate %q: %w", key, err)
	}
	earth, err := e.catalog.Earth()
	if err != nil {
		return 0, fmt.Errorf("estimate %q: reference body: %w", key, err)
	}
	return math.Abs(target.DistanceFromSun - earth.DistanceFromSun), nil
}

// Estimate returns the distance to the planet stored under key, rounded
// down to a multiple of RoundTo.
func (e *Estimator) Estimate(key string) (int64, error) {
	base, err := e.Base(key)
	if err != nil {
		return 0, err
	}
	variation := base * Variation
	perturbed := base + (e.rnd.Float64()*variation - variation/2)
	return int64(perturbed/RoundTo) * RoundTo, nil
}
