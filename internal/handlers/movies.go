package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gotvmovies/internal/constants"
	"github.com/amaumene/gotvmovies/internal/metrics"
	"github.com/amaumene/gotvmovies/internal/models"
	"github.com/amaumene/gotvmovies/internal/view"
)

// moviesResponse is the JSON envelope of the rows endpoint.
type moviesResponse struct {
	State              models.FeedState `json:"state"`
	LastUpdateDateTime string           `json:"lastUpdateDateTime,omitempty"`
	FetchedAt          time.Time        `json:"fetchedAt"`
	Count              int              `json:"count"`
	Table              view.Table       `json:"table"`
}

// handleHome renders the table page. Exactly one of the three feed
// states is shown: a loading hint, the error line, or the table.
func (h *Handler) handleHome(c *gin.Context) {
	res := h.services.Feed.Resolve(c.Request.Context())
	metrics.IncTableRender(string(res.State))

	page := gin.H{
		"Title":   constants.PageTitle,
		"AppName": constants.AppName,
		"State":   string(res.State),
	}

	switch res.State {
	case models.FeedStateError:
		page["ErrorMessage"] = res.Err.Error()
	case models.FeedStateSuccess:
		page["Table"] = view.Build(res.Data.Movies, h.viewOptions(c))
		page["LastUpdate"] = res.Data.LastUpdateDateTime
	}

	c.HTML(http.StatusOK, "movies.tmpl", page)
}

// handleMoviesAPI serves the row projection as JSON. A pending resource
// maps to 503 and a failed one to 502, so API consumers can tell the
// states apart without parsing the body.
func (h *Handler) handleMoviesAPI(c *gin.Context) {
	res := h.services.Feed.Resolve(c.Request.Context())

	switch res.State {
	case models.FeedStatePending:
		c.JSON(http.StatusServiceUnavailable, gin.H{"state": res.State})
	case models.FeedStateError:
		c.JSON(http.StatusBadGateway, gin.H{
			"state": res.State,
			"error": res.Err.Error(),
		})
	default:
		table := view.Build(res.Data.Movies, h.viewOptions(c))
		c.JSON(http.StatusOK, moviesResponse{
			State:              res.State,
			LastUpdateDateTime: res.Data.LastUpdateDateTime,
			FetchedAt:          res.FetchedAt,
			Count:              len(table.Rows),
			Table:              table,
		})
	}
}
