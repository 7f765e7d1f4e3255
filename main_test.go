package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	t.Setenv("PLANETS_LANG", "")

	planetKey, coords, deviceAt, lang = "", "", "", ""
	useDevice, verbose = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--env", filepath.Join(t.TempDir(), ".env")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEstimateManual(t *testing.T) {
	out, err := execute(t, "estimate", "--lang", "en", "--planet", "mars", "--coords", "51.5, -0.1")
	require.NoError(t, err)

	assert.Contains(t, out, "Distance from the given point to Mars:")
	assert.Contains(t, out, " km")
	assert.Contains(t, out, "trips around Earth")
}

func TestEstimateDeviceAt(t *testing.T) {
	out, err := execute(t, "estimate", "--planet", "venus", "--device-at", "55.75, 37.62", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, out, "Расстояние от твоей точки до Венеры:")
	assert.Contains(t, out, "calculation ")
	assert.Contains(t, out, "DistanceKm:")
}

func TestEstimateInvalidCoordinates(t *testing.T) {
	out, err := execute(t, "estimate", "--lang", "en", "--planet", "mars", "--coords", "1,2,3")
	require.Error(t, err)
	assert.Equal(t, "enter valid coordinates.", err.Error())
	assert.NotContains(t, out, "enter valid coordinates.")
	assert.NotContains(t, out, "Error:")
}

func TestEstimateDeviceUnsupportedWithoutKey(t *testing.T) {
	_, err := execute(t, "estimate", "--lang", "en", "--planet", "mars", "--device")
	require.Error(t, err)
	assert.Equal(t, "geolocation is not supported.", err.Error())
}

func TestPlanetsCommand(t *testing.T) {
	out, err := execute(t, "planets", "--lang", "en")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "1. mercury"))
	assert.True(t, strings.HasPrefix(lines[7], "8. neptune"))
	assert.Contains(t, lines[3], "images/mars.jpg")
}
