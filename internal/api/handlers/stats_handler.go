package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/coinpulse/crypto-news-search/internal/news"
)

// StatsHandler serves the cache/usage statistics endpoints.
type StatsHandler struct {
	engine    *news.Engine
	validator *validator.Validate
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(engine *news.Engine) *StatsHandler {
	return &StatsHandler{
		engine:    engine,
		validator: validator.New(),
	}
}

// StatsRequest holds the query parameters for the stats endpoint.
type StatsRequest struct {
	Limit int `form:"limit,default=10" validate:"gte=1,lte=100"`
}

// Stats godoc
// @Summary Cache and search statistics
// @Description Returns a snapshot of the result cache (key count, estimated memory footprint, hit rate) and the top searched terms by count.
// @Tags stats
// @Produce json
// @Param limit query int false "Number of top search terms to include" default(10) minimum(1) maximum(100)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid limit"
// @Router /api/v1/stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	var req StatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parameters", "details": err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cache":        h.engine.StatsSnapshot(),
		"top_searches": h.engine.TopSearches(req.Limit),
	})
}
