package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrder(t *testing.T) {
	c := DefaultCatalog()

	keys := make([]string, 0, c.Len())
	for _, p := range c.All() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{
		"mercury", "venus", "earth", "mars",
		"jupiter", "saturn", "uranus", "neptune",
	}, keys)
}

func TestDefaultCatalogDistancesPositive(t *testing.T) {
	for _, p := range DefaultCatalog().All() {
		assert.Greater(t, p.DistanceFromSun, 0.0, p.Key)
		assert.NotEmpty(t, p.Image, p.Key)
		assert.NotEmpty(t, p.NameRU, p.Key)
	}
}

func TestCatalogGet(t *testing.T) {
	c := DefaultCatalog()

	mars, err := c.Get("mars")
	require.NoError(t, err)
	assert.Equal(t, "Марса", mars.NameRU)
	assert.Equal(t, 227.9e6, mars.DistanceFromSun)

	_, err = c.Get("pluto")
	assert.ErrorIs(t, err, ErrPlanetNotFound)
}

func TestCatalogLookup(t *testing.T) {
	c := DefaultCatalog()

	p, err := c.Lookup("  JUPITER ")
	require.NoError(t, err)
	assert.Equal(t, "jupiter", p.Key)

	p, err = c.Lookup("Neptune")
	require.NoError(t, err)
	assert.Equal(t, "neptune", p.Key)

	_, err = c.Lookup("Юпитер")
	assert.ErrorIs(t, err, ErrPlanetNotFound)
}

func TestCatalogIsImmutable(t *testing.T) {
	c := DefaultCatalog()

	all := c.All()
	all[0].DistanceFromSun = 1

	mercury, err := c.Get("mercury")
	require.NoError(t, err)
	assert.Equal(t, 57.9e6, mercury.DistanceFromSun)
}

func TestEarth(t *testing.T) {
	earth, err := DefaultCatalog().Earth()
	require.NoError(t, err)
	assert.Equal(t, 149.6e6, earth.DistanceFromSun)

	_, err = NewCatalog(nil).Earth()
	assert.ErrorIs(t, err, ErrPlanetNotFound)
}
