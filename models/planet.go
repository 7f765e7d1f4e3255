package models

import (
	"errors"
	"strings"
)

// ErrPlanetNotFound is returned when a key does not name a catalog planet.
var ErrPlanetNotFound = errors.New("planet not found")

// EarthKey is the reference body every distance is measured from.
const EarthKey = "earth"

// Planet represents a planet of the solar system as shown in the gallery
type Planet struct {
	Key             string  `json:"key"`
	Name            string  `json:"name"`
	NameRU          string  `json:"name_ru"`           // genitive, "до Марса"
	DistanceFromSun float64 `json:"distance_from_sun"` // km, average
	Image           string  `json:"image"`
	Color           string  `json:"color"` // hex color
}

// Catalog is the fixed, ordered set of planets the page knows about.
type Catalog struct {
	planets []Planet
	index   map[string]int
}

// NewCatalog builds a catalog keeping the order of planets.
func NewCatalog(planets []Planet) *Catalog {
	c := &Catalog{
		planets: make([]Planet, len(planets)),
		index:   make(map[string]int, len(planets)),
	}
	copy(c.planets, planets)
	for i, p := range c.planets {
		c.index[p.Key] = i
	}
	return c
}

// DefaultCatalog returns the eight planets with simplified average distances.
func DefaultCatalog() *Catalog {
	return NewCatalog(GetSolarSystemPlanets())
}

// All returns the planets in declaration order.
func (c *Catalog) All() []Planet {
	out := make([]Planet, len(c.planets))
	copy(out, c.planets)
	return out
}

// Len returns the number of planets.
func (c *Catalog) Len() int { return len(c.planets) }

// Get returns the planet stored under key.
func (c *Catalog) Get(key string) (Planet, error) {
	i, ok := c.index[key]
	if !ok {
		return Planet{}, ErrPlanetNotFound
	}
	return c.planets[i], nil
}

// Lookup finds a planet by key or English name, ignoring case.
func (c *Catalog) Lookup(name string) (Planet, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if p, err := c.Get(name); err == nil {
		return p, nil
	}
	for _, p := range c.planets {
		if strings.ToLower(p.Name) == name {
			return p, nil
		}
	}
	return Planet{}, ErrPlanetNotFound
}

// Earth returns the reference body.
func (c *Catalog) Earth() (Planet, error) {
	return c.Get(EarthKey)
}

// GetSolarSystemPlanets returns the planets in order from the Sun
func GetSolarSystemPlanets() []Planet {
	return []Planet{
		{
			Key:             "mercury",
			Name:            "Mercury",
			NameRU:          "Меркурия",
			DistanceFromSun: 57.9e6,
			Image:           "mercury.jpg",
			Color:           "#B5B5B5",
		},
		{
			Key:             "venus",
			Name:            "Venus",
			NameRU:          "Венеры",
			DistanceFromSun: 108.2e6,
			Image:           "venus.jpg",
			Color:           "#E8CDA2",
		},
		{
			Key:             EarthKey,
			Name:            "Earth",
			NameRU:          "Земли",
			DistanceFromSun: 149.6e6,
			Image:           "earth.jpg",
			Color:           "#2E86AB",
		},
		{
			Key:             "mars",
			Name:            "Mars",
			NameRU:          "Марса",
			DistanceFromSun: 227.9e6,
			Image:           "mars.jpg",
			Color:           "#C1440E",
		},
		{
			Key:             "jupiter",
			Name:            "Jupiter",
			NameRU:          "Юпитера",
			DistanceFromSun: 778.5e6,
			Image:           "jupiter.jpg",
			Color:           "#C88B3A",
		},
		{
			Key:             "saturn",
			Name:            "Saturn",
			NameRU:          "Сатурна",
			DistanceFromSun: 1432.0e6,
			Image:           "saturn.jpg",
			Color:           "#E4D191",
		},
		{
			Key:             "uranus",
			Name:            "Uranus",
			NameRU:          "Урана",
			DistanceFromSun: 2867.0e6,
			Image:           "uranus.jpg",
			Color:           "#7DE8E8",
		},
		{
			Key:             "neptune",
			Name:            "Neptune",
			NameRU:          "Нептуна",
			DistanceFromSun: 4515.0e6,
			Image:           "neptune.jpg",
			Color:           "#3F54BA",
		},
	}
}
