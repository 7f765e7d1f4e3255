package handlers

import (
	"errors"
	"net/http"

	"planet-distance/models"

	"github.com/gin-gonic/gin"
)

// GetPlanets returns the catalog in declaration order
func (h *Handler) GetPlanets(c *gin.Context) {
	planets := h.catalog.All()
	c.JSON(http.StatusOK, gin.H{
		"data":  planets,
		"count": len(planets),
	})
}

// GetPlanetByName returns a single planet by key or English name
func (h *Handler) GetPlanetByName(c *gin.Context) {
	planet, err := h.catalog.Lookup(c.Param("name"))
	if errors.Is(err, models.ErrPlanetNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Planet not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": planet})
}
