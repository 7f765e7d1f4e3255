package handlers

import (
	"net/http"

	"planet-distance/gallery"

	"github.com/gin-gonic/gin"
)

type option struct {
	Key   string
	Label string
}

type pageData struct {
	Lang    string
	Planets []option
	Cards   gallery.Cards
}

// Index renders the page with the planet selector and the gallery
func (h *Handler) Index(c *gin.Context) {
	planets := h.catalog.All()
	data := pageData{
		Lang:    h.locale.Tag().String(),
		Planets: make([]option, 0, len(planets)),
		Cards:   h.cards,
	}
	for _, p := range planets {
		data.Planets = append(data.Planets, option{Key: p.Key, Label: h.locale.PlanetName(p)})
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// Health reports that the server is up
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
