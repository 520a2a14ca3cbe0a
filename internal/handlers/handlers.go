// Package handlers implements the HTTP handlers for the movie table
// service.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amaumene/gotvmovies/internal/config"
	"github.com/amaumene/gotvmovies/internal/services"
	"github.com/amaumene/gotvmovies/internal/view"
)

// Handler handles HTTP requests for the movie table service.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new handler with the given services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes on the router and installs
// the page template.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(pageTemplate)

	router.GET("/", h.handleHome)
	router.GET("/api/movies", h.handleMoviesAPI)
	router.GET("/api/status", h.handleStatus)
	router.GET("/health", h.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// viewOptions derives the projection options of one request: safelisted
// sort from ?sort, locale from ?lang then Accept-Language then the
// configured default, and the standard recent-start filter.
func (h *Handler) viewOptions(c *gin.Context) view.Options {
	locale := view.MatchLocale(
		c.Query("lang"),
		c.GetHeader("Accept-Language"),
		h.config.DisplayLocale,
	)
	opts := view.DefaultOptions(time.Now(), locale)
	opts.Sort = view.NormalizeSort(c.Query("sort"))
	return opts
}
