package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coinpulse/crypto-news-search/internal/news"
)

// SearchHandler serves the news search endpoint.
type SearchHandler struct {
	engine *news.Engine
}

// NewSearchHandler creates a new search handler over the shared engine.
func NewSearchHandler(engine *news.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// Search godoc
// @Summary Search crypto news
// @Description Resolves a free-text query ("btc", "ethereum news") to a ranked list of recent news items with sentiment labels. Ticker symbols are canonicalized (BTC resolves to bitcoin) and repeated searches for the same asset are served from cache. An empty result list is a successful response, not an error.
// @Tags news
// @Produce json
// @Param q query string true "Search term: asset name, ticker symbol or any phrase" example(btc)
// @Success 200 {object} models.SearchResult
// @Failure 400 {object} map[string]string "Empty query"
// @Failure 502 {object} map[string]string "Provider-side failure"
// @Failure 500 {object} map[string]string "Missing credential or internal error"
// @Router /api/v1/news [get]
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.engine.Resolve(c.Request.Context(), c.Query("q"))
	if err != nil {
		kind := news.Kind(err)
		c.JSON(statusForKind(kind), gin.H{
			"error": err.Error(),
			"kind":  kind,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// statusForKind maps pipeline error kinds to HTTP statuses. Provider-side
// failures are gateway errors; only the empty query is the caller's fault.
func statusForKind(kind string) int {
	switch kind {
	case "invalid_query":
		return http.StatusBadRequest
	case "transport_error":
		return http.StatusGatewayTimeout
	case "authentication_error", "provider_http_error", "provider_reported_error",
		"malformed_payload", "date_parse_error":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

