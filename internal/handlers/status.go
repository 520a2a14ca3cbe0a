package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gotvmovies/internal/constants"
)

// handleStatus reports the feed resource without triggering a fetch.
func (h *Handler) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Feed.Status())
}

// handleHealth is the liveness probe.
func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    constants.AppName,
		"version": constants.AppVersion,
	})
}
