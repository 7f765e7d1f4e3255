package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet-distance/locale"
	"planet-distance/models"
)

func TestRenderOneCardPerPlanet(t *testing.T) {
	catalog := models.DefaultCatalog()
	var cards Cards

	Render(catalog, locale.New("ru"), &cards)

	require.Len(t, cards, 8)
	for i, p := range catalog.All() {
		assert.Equal(t, p.Key, cards[i].Key)
	}
	assert.Equal(t, Card{
		Key:   "mercury",
		Image: "images/mercury.jpg",
		Alt:   "Меркурия",
		Label: "Меркурия",
		Color: "#B5B5B5",
	}, cards[0])
	assert.Equal(t, "neptune", cards[7].Key)
}

func TestRenderAppendsToExistingContent(t *testing.T) {
	cards := Cards{{Key: "sun"}}

	Render(models.DefaultCatalog(), locale.New("en"), &cards)

	require.Len(t, cards, 9)
	assert.Equal(t, "sun", cards[0].Key)
	assert.Equal(t, "Mercury", cards[1].Label)
}

func TestRenderEmptyCatalog(t *testing.T) {
	var cards Cards
	Render(models.NewCatalog(nil), locale.New("en"), &cards)
	assert.Empty(t, cards)
}
