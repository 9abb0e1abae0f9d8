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

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs ---

// SetRequest is one explicit set inside an exercise entry.
type SetRequest struct {
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps" binding:"min=0"`
	Weight    float64 `json:"weight" binding:"min=0"`
	RestTime  int     `json:"restTime" binding:"min=0"`
	Completed bool    `json:"completed"`
	Notes     string  `json:"notes"`
}

// PlanExerciseRequest is one exercise entry as sent by the client. Sets
// is optional; targetSets default sets are generated when it is absent.
type PlanExerciseRequest struct {
	Exercise     string       `json:"exercise" binding:"required"`
	TargetSets   int          `json:"targetSets" binding:"omitempty,min=1"`
	TargetReps   int          `json:"targetReps" binding:"omitempty,min=1"`
	TargetWeight float64      `json:"targetWeight" binding:"omitempty,min=0"`
	Sets         []SetRequest `json:"sets" binding:"omitempty,dive"`
	Instructions string       `json:"instructions"`
}

// CreatePlanRequest defines the expected JSON for creating a plan.
type CreatePlanRequest struct {
	Name               string                `json:"name" binding:"required,max=100"`
	Description        string                `json:"description" binding:"omitempty,max=500"`
	Exercises          []PlanExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
	Category           string                `json:"category" binding:"omitempty,oneof=strength cardio flexibility mixed custom"`
	Difficulty         string                `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Tags               []string              `json:"tags"`
	TargetMuscleGroups []string              `json:"targetMuscleGroups"`
	Equipment          []string              `json:"equipment"`
	IsPublic           bool                  `json:"isPublic"`
}

// UpdatePlanRequest is a partial plan update. Absent fields stay
// unchanged; a present exercise list replaces the whole list.
type UpdatePlanRequest struct {
	Name               *string               `json:"name" binding:"omitempty,max=100"`
	Description        *string               `json:"description" binding:"omitempty,max=500"`
	Exercises          []PlanExerciseRequest `json:"exercises" binding:"omitempty,min=1,dive"`
	Category           *string               `json:"category" binding:"omitempty,oneof=strength cardio flexibility mixed custom"`
	Difficulty         *string               `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Tags               []string              `json:"tags"`
	TargetMuscleGroups []string              `json:"targetMuscleGroups"`
	Equipment          []string              `json:"equipment"`
	IsPublic           *bool                 `json:"isPublic"`
	IsActive           *bool                 `json:"isActive"`
}

// AddExerciseRequest appends one exercise to an existing plan.
type AddExerciseRequest struct {
	Exercise     string  `json:"exercise" binding:"required"`
	TargetSets   int     `json:"targetSets" binding:"omitempty,min=1"`
	TargetReps   int     `json:"targetReps" binding:"omitempty,min=1"`
	TargetWeight float64 `json:"targetWeight" binding:"omitempty,min=0"`
	Instructions string  `json:"instructions"`
}

func toExerciseInputs(reqs []PlanExerciseRequest) ([]service.PlanExerciseInput, error) {
	inputs := make([]service.PlanExerciseInput, len(reqs))
	for i, req := range reqs {
		exerciseID, err := primitive.ObjectIDFromHex(req.Exercise)
		if err != nil {
			return nil, err
		}
		sets := make([]domain.ExerciseSet, len(req.Sets))
		for j, set := range req.Sets {
			sets[j] = domain.ExerciseSet{
				SetNumber: set.SetNumber,
				Reps:      set.Reps,
				Weight:    set.Weight,
				RestTime:  set.RestTime,
				Completed: set.Completed,
				Notes:     set.Notes,
			}
		}
		inputs[i] = service.PlanExerciseInput{
			ExerciseID:   exerciseID,
			TargetSets:   req.TargetSets,
			TargetReps:   req.TargetReps,
			TargetWeight: req.TargetWeight,
			Sets:         sets,
			Instructions: req.Instructions,
		}
	}
	return inputs, nil
}

// --- Handler Methods ---

// ListPlans handles GET /plans with optional category, difficulty,
// isActive and search filters.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	filter := repository.PlanFilter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
	}
	if raw, ok := c.GetQuery("isActive"); ok {
		isActive := raw == "true"
		filter.IsActive = &isActive
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), userID, filter)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout plans.")
		return
	}
	if plans == nil {
		plans = []domain.WorkoutPlan{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    plans,
		"count":   len(plans),
	})
}

// GetPlan handles GET /plans/:id.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": plan})
}

// CreatePlan handles POST /plans.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	inputs, err := toExerciseInputs(req.Exercises)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), userID, service.CreatePlanInput{
		Name:               req.Name,
		Description:        req.Description,
		Exercises:          inputs,
		Category:           req.Category,
		Difficulty:         req.Difficulty,
		Tags:               req.Tags,
		TargetMuscleGroups: req.TargetMuscleGroups,
		Equipment:          req.Equipment,
		IsPublic:           req.IsPublic,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    plan,
		"message": "Workout plan created successfully",
	})
}

// UpdatePlan handles PUT /plans/:id.
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	var inputs []service.PlanExerciseInput
	if req.Exercises != nil {
		inputs, err = toExerciseInputs(req.Exercises)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
			return
		}
	}

	patch := domain.PlanPatch{
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Difficulty:         req.Difficulty,
		Tags:               req.Tags,
		TargetMuscleGroups: req.TargetMuscleGroups,
		Equipment:          req.Equipment,
		IsPublic:           req.IsPublic,
		IsActive:           req.IsActive,
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), userID, planID, patch, inputs)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    plan,
		"message": "Workout plan updated successfully",
	})
}

// DeletePlan handles DELETE /plans/:id.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Workout plan deleted successfully",
	})
}

// AddExercise handles POST /plans/:id/exercises.
func (h *PlanHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(req.Exercise)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	plan, err := h.planService.AddExercise(c.Request.Context(), userID, planID, service.PlanExerciseInput{
		ExerciseID:   exerciseID,
		TargetSets:   req.TargetSets,
		TargetReps:   req.TargetReps,
		TargetWeight: req.TargetWeight,
		Instructions: req.Instructions,
	})
	if err != nil {
		// An unresolvable reference on this route reads as a missing
		// exercise, not a bad request.
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    plan,
		"message": "Exercise added to workout plan",
	})
}

// RemoveExercise handles DELETE /plans/:id/exercises/:exerciseId.
func (h *PlanHandler) RemoveExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	plan, err := h.planService.RemoveExercise(c.Request.Context(), userID, planID, exerciseID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    plan,
		"message": "Exercise removed from workout plan",
	})
}
