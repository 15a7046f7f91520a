package spotify

import (
	"errors"
	"net/http"

	"github.com/angristan/spotify-search-provider/internal/app/host"
	"github.com/angristan/spotify-search-provider/internal/app/search"
	appspotify "github.com/angristan/spotify-search-provider/internal/app/services/spotify"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

func (h *SpotifyHandler) Search(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SpotifyHandler.Search")
	defer span.End()

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	opts := search.Options{Engine: c.Query("engine")}
	if requester := c.Query("requester"); requester != "" {
		opts.Requester = requester
	}
	span.SetAttributes(attribute.String("search.engine", opts.Engine))

	result, err := h.searchService.Search(ctx, query, opts)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, appspotify.ErrInvalidQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		case errors.Is(err, host.ErrNoSearchEngine):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no search engine can handle this query"})
		case errors.Is(err, appspotify.ErrNotLoaded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "spotify search provider is not loaded"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
