package api

import (
	"errors"
	"net/http"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"
	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler serves the read-only exercise catalog.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListExercises handles GET /exercises with optional category,
// difficulty and search filters.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	filter := repository.ExerciseFilter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
	}

	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    exercises,
		"count":   len(exercises),
	})
}

// GetExercise handles GET /exercises/:id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": exercise})
}
