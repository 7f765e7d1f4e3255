package handlers

import (
	"errors"
	"log"
	"net/http"

	"planet-distance/location"
	"planet-distance/models"
	"planet-distance/presenter"

	"github.com/gin-gonic/gin"
)

// CalculateDistance runs one calculation for the posted form state
func (h *Handler) CalculateDistance(c *gin.Context) {
	var req presenter.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	rec := &presenter.Recorder{}
	res, err := h.presenter.Calculate(c.Request.Context(), req, rec)
	if err != nil {
		log.Printf("calculate %q: %v", req.PlanetKey, err)
		c.JSON(statusFor(err), gin.H{"error": rec.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

func statusFor(err error) int {
	var (
		verr *location.ValidationError
		perr *location.PermissionOrUnavailableError
		uerr *location.UnsupportedError
	)
	switch {
	case errors.Is(err, models.ErrPlanetNotFound):
		return http.StatusNotFound
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &perr):
		return http.StatusBadGateway
	case errors.As(err, &uerr):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
