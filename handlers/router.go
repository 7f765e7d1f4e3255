package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"planet-distance/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig holds what the router needs besides the handler.
type RouterConfig struct {
	ImagesDir      string
	AllowedOrigins []string
}

// NewRouter wires the page, the API and the static files.
func NewRouter(h *Handler, cfg RouterConfig) (*gin.Engine, error) {
	r := gin.Default()

	tmpl, err := web.Templates(template.FuncMap{"t": h.locale.Text})
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: false,
		}))
	}

	r.GET("/", h.Index)
	r.GET("/healthz", h.Health)
	r.StaticFS("/static", http.FS(web.Static()))
	if cfg.ImagesDir != "" {
		r.Static("/images", cfg.ImagesDir)
	}

	// API routes
	api := r.Group("/api")
	{
		api.GET("/planets", h.GetPlanets)
		api.GET("/planets/:name", h.GetPlanetByName)
		api.POST("/distance", h.CalculateDistance)
	}

	return r, nil
}
