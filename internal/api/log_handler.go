package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"
	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogHandler serves the immutable workout history.
type LogHandler struct {
	logService    service.LogService
	exportService service.ExportService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService service.LogService, exportService service.ExportService) *LogHandler {
	return &LogHandler{
		logService:    logService,
		exportService: exportService,
	}
}

// ExportLogsRequest narrows a history export to a date range. Both
// bounds must be present for the range to apply.
type ExportLogsRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// logFilterFromRange builds a LogFilter from raw date strings, applying
// the range only when both bounds parse.
func logFilterFromRange(c *gin.Context, startRaw, endRaw string) (repository.LogFilter, bool) {
	var filter repository.LogFilter
	if startRaw == "" || endRaw == "" {
		return filter, true
	}
	start, err := parseDate(startRaw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid startDate format.")
		return filter, false
	}
	end, err := parseDate(endRaw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid endDate format.")
		return filter, false
	}
	filter.StartDate = &start
	filter.EndDate = &end
	return filter, true
}

// GetLogs handles GET /logs with page/limit/startDate/endDate.
func (h *LogHandler) GetLogs(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter, ok := logFilterFromRange(c, c.Query("startDate"), c.Query("endDate"))
	if !ok {
		return
	}

	logs, pagination, err := h.logService.GetLogs(c.Request.Context(), userID, filter, page, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout logs.")
		return
	}
	if logs == nil {
		logs = []domain.WorkoutLog{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       logs,
		"pagination": pagination,
	})
}

// GetLog handles GET /logs/:id.
func (h *LogHandler) GetLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	logID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid log ID format.")
		return
	}

	log, err := h.logService.GetLog(c.Request.Context(), userID, logID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": log})
}

// ExportLogs handles POST /logs/export.
func (h *LogHandler) ExportLogs(c *gin.Context) {
	// The date range is optional, so an empty body is fine.
	var req ExportLogsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	filter, ok := logFilterFromRange(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	result, err := h.exportService.ExportHistory(c.Request.Context(), userID, filter)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to export workout history.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
		"message": "Workout history exported successfully",
	})
}
