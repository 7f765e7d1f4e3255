package handlers

import (
	"planet-distance/gallery"
	"planet-distance/locale"
	"planet-distance/models"
	"planet-distance/presenter"
)

// Handler serves the page and the JSON API.
type Handler struct {
	catalog   *models.Catalog
	presenter *presenter.Presenter
	locale    *locale.Localizer
	cards     gallery.Cards
}

// New returns a Handler. The gallery is rendered once, the catalog never
// changes.
func New(catalog *models.Catalog, p *presenter.Presenter) *Handler {
	h := &Handler{
		catalog:   catalog,
		presenter: p,
		locale:    p.Locale(),
	}
	gallery.Render(catalog, h.locale, &h.cards)
	return h
}
