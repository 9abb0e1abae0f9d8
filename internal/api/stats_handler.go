package api

import (
	"net/http"
	"strconv"

	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler holds the stats service dependency.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /stats?days=N (default 30).
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	stats, err := h.statsService.GetUserStats(c.Request.Context(), userID, days)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute workout statistics.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
