// Package gallery lays out one card per catalog planet.
package gallery

import (
	"path"

	"planet-distance/locale"
	"planet-distance/models"
)

// ImagePrefix is the URL path images are served under.
const ImagePrefix = "images"

// Card is the visual entry of one planet.
type Card struct {
	Key   string
	Image string
	Alt   string
	Label string
	Color string
}

// Container receives cards in order.
type Container interface {
	Append(Card)
}

// Cards is a Container backed by a slice.
type Cards []Card

// Append implements Container.
func (c *Cards) Append(card Card) { *c = append(*c, card) }

// Render appends a card for every planet of catalog to container, in catalog
// order. Image files are not checked.
func Render(catalog *models.Catalog, l *locale.Localizer, container Container) {
	for _, p := range catalog.All() {
		name := l.PlanetName(p)
		container.Append(Card{
			Key:   p.Key,
			Image: path.Join(ImagePrefix, p.Image),
			Alt:   name,
			Label: name,
			Color: p.Color,
		})
	}
}
