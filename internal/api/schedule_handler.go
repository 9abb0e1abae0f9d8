package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"
	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleHandler holds the scheduling and progress dependencies.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
	progressService service.ProgressService
	logService      service.LogService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService service.ScheduleService, progressService service.ProgressService, logService service.LogService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		progressService: progressService,
		logService:      logService,
	}
}

// --- DTOs ---

// ScheduleWorkoutRequest defines the expected JSON for scheduling a
// workout from a plan.
type ScheduleWorkoutRequest struct {
	WorkoutPlan   string `json:"workoutPlan" binding:"required"`
	ScheduledDate string `json:"scheduledDate" binding:"required"`
	ScheduledTime string `json:"scheduledTime" binding:"required"`
	ReminderTime  int    `json:"reminderTime" binding:"omitempty,min=1"`
}

// UpdateScheduledRequest is a partial manual edit of a scheduled
// workout. Absent fields stay unchanged.
type UpdateScheduledRequest struct {
	ScheduledDate *string               `json:"scheduledDate"`
	ScheduledTime *string               `json:"scheduledTime"`
	Status        *domain.WorkoutStatus `json:"status"`
	Notes         *string               `json:"notes"`
	Rating        *int                  `json:"rating" binding:"omitempty,min=1,max=5"`
}

// UpdateSetRequest carries the patchable fields of one set.
type UpdateSetRequest struct {
	Reps      *int     `json:"reps" binding:"omitempty,min=0"`
	Weight    *float64 `json:"weight" binding:"omitempty,min=0"`
	Completed *bool    `json:"completed"`
	Notes     *string  `json:"notes"`
}

// CompleteWorkoutRequest carries the optional completion fields.
type CompleteWorkoutRequest struct {
	Rating         int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Notes          string `json:"notes" binding:"omitempty,max=1000"`
	CaloriesBurned int    `json:"caloriesBurned" binding:"omitempty,min=0"`
}

// --- Handler Methods ---

// ListScheduled handles GET /scheduled with optional status, date-range
// and upcoming filters.
func (h *ScheduleHandler) ListScheduled(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	filter := repository.SessionFilter{
		Upcoming: c.Query("upcoming") == "true",
	}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, domain.WorkoutStatus(s))
		}
	}
	// A date range applies only when both bounds are present.
	if startRaw, endRaw := c.Query("startDate"), c.Query("endDate"); startRaw != "" && endRaw != "" {
		start, err := parseDate(startRaw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid startDate format.")
			return
		}
		end, err := parseDate(endRaw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid endDate format.")
			return
		}
		filter.StartDate = &start
		filter.EndDate = &end
	}

	workouts, err := h.scheduleService.ListWorkouts(c.Request.Context(), userID, filter)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve scheduled workouts.")
		return
	}
	if workouts == nil {
		workouts = []domain.ScheduledWorkout{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    workouts,
		"count":   len(workouts),
	})
}

// GetScheduled handles GET /scheduled/:id.
func (h *ScheduleHandler) GetScheduled(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	workout, err := h.scheduleService.GetWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": workout})
}

// ScheduleWorkout handles POST /scheduled.
func (h *ScheduleHandler) ScheduleWorkout(c *gin.Context) {
	var req ScheduleWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	planID, err := primitive.ObjectIDFromHex(req.WorkoutPlan)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}
	date, err := parseDate(req.ScheduledDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid scheduledDate format.")
		return
	}

	workout, err := h.scheduleService.Schedule(c.Request.Context(), userID, planID, date, req.ScheduledTime, req.ReminderTime)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    workout,
		"message": "Workout scheduled successfully",
	})
}

// UpdateScheduled handles PUT /scheduled/:id.
func (h *ScheduleHandler) UpdateScheduled(c *gin.Context) {
	var req UpdateScheduledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	patch := domain.SchedulePatch{
		ScheduledTime: req.ScheduledTime,
		Status:        req.Status,
		Notes:         req.Notes,
		Rating:        req.Rating,
	}
	if req.ScheduledDate != nil {
		date, err := parseDate(*req.ScheduledDate)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid scheduledDate format.")
			return
		}
		patch.ScheduledDate = &date
	}

	workout, err := h.scheduleService.UpdateWorkout(c.Request.Context(), userID, workoutID, patch)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    workout,
		"message": "Scheduled workout updated successfully",
	})
}

// StartWorkout handles POST /scheduled/:id/start.
func (h *ScheduleHandler) StartWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	workout, err := h.scheduleService.StartWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    workout,
		"message": "Workout started successfully",
	})
}

// CompleteWorkout handles POST /scheduled/:id/complete.
func (h *ScheduleHandler) CompleteWorkout(c *gin.Context) {
	// Every completion field is optional, so an empty body is fine.
	var req CompleteWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	workout, _, err := h.logService.CompleteWorkout(c.Request.Context(), userID, workoutID, service.CompleteWorkoutInput{
		Rating:         req.Rating,
		Notes:          req.Notes,
		CaloriesBurned: req.CaloriesBurned,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    workout,
		"message": "Workout completed successfully",
	})
}

// UpdateSetProgress handles PUT /scheduled/:id/exercise/:exerciseIndex/set/:setIndex.
func (h *ScheduleHandler) UpdateSetProgress(c *gin.Context) {
	var req UpdateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}
	exerciseIndex, err := strconv.Atoi(c.Param("exerciseIndex"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise index.")
		return
	}
	setIndex, err := strconv.Atoi(c.Param("setIndex"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid set index.")
		return
	}

	patch := domain.SetPatch{
		Reps:      req.Reps,
		Weight:    req.Weight,
		Completed: req.Completed,
		Notes:     req.Notes,
	}

	workout, err := h.progressService.UpdateSetProgress(c.Request.Context(), userID, workoutID, exerciseIndex, setIndex, patch)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    workout,
		"message": "Set progress updated successfully",
	})
}

// DeleteScheduled handles DELETE /scheduled/:id.
func (h *ScheduleHandler) DeleteScheduled(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	if err := h.scheduleService.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Scheduled workout deleted successfully",
	})
}
