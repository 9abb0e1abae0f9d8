package service

import (
	"context"
	"errors"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanExerciseInput is one exercise entry as supplied by the caller.
// Sets is optional; when absent, targetSets default sets are generated.
type PlanExerciseInput struct {
	ExerciseID   primitive.ObjectID
	TargetSets   int
	TargetReps   int
	TargetWeight float64
	Sets         []domain.ExerciseSet
	Instructions string
}

// CreatePlanInput carries everything needed to create a plan template.
type CreatePlanInput struct {
	Name               string
	Description        string
	Exercises          []PlanExerciseInput
	Category           string
	Difficulty         string
	Tags               []string
	TargetMuscleGroups []string
	Equipment          []string
	IsPublic           bool
}

// PlanService owns workout plan templates: creation, mutation, exercise
// ordering and duration estimation.
type PlanService interface {
	CreatePlan(ctx context.Context, userID primitive.ObjectID, input CreatePlanInput) (*domain.WorkoutPlan, error)
	GetPlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.WorkoutPlan, error)
	ListPlans(ctx context.Context, userID primitive.ObjectID, filter repository.PlanFilter) ([]domain.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, userID, planID primitive.ObjectID, patch domain.PlanPatch, exercises []PlanExerciseInput) (*domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, userID, planID primitive.ObjectID) error
	AddExercise(ctx context.Context, userID, planID primitive.ObjectID, entry PlanExerciseInput) (*domain.WorkoutPlan, error)
	RemoveExercise(ctx context.Context, userID, planID, exerciseID primitive.ObjectID) (*domain.WorkoutPlan, error)
}

// planService implements the PlanService interface.
type planService struct {
	planRepo repository.PlanRepository
	catalog  repository.ExerciseCatalog
}

// NewPlanService creates a new instance of planService.
func NewPlanService(planRepo repository.PlanRepository, catalog repository.ExerciseCatalog) PlanService {
	return &planService{
		planRepo: planRepo,
		catalog:  catalog,
	}
}

// resolveEntries validates every referenced exercise id against the
// catalog in one batch lookup and builds the plan entries: denormalized
// name, 1-based order, generated default sets where none were supplied.
func (s *planService) resolveEntries(ctx context.Context, inputs []PlanExerciseInput) ([]domain.PlanExercise, error) {
	ids := make([]primitive.ObjectID, len(inputs))
	for i, in := range inputs {
		ids[i] = in.ExerciseID
	}

	found, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]domain.Exercise, len(found))
	for _, ex := range found {
		byID[ex.ID] = ex
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, ErrExerciseNotFound
		}
	}

	entries := make([]domain.PlanExercise, len(inputs))
	for i, in := range inputs {
		targetSets := in.TargetSets
		if targetSets <= 0 {
			targetSets = domain.DefaultTargetSets
		}
		targetReps := in.TargetReps
		if targetReps <= 0 {
			targetReps = domain.DefaultTargetReps
		}

		sets := in.Sets
		if len(sets) == 0 {
			sets = domain.DefaultSets(targetSets, targetReps, in.TargetWeight)
		} else {
			// Set numbers always reflect position.
			for j := range sets {
				sets[j].SetNumber = j + 1
			}
		}

		entries[i] = domain.PlanExercise{
			ExerciseID:   in.ExerciseID,
			ExerciseName: byID[in.ExerciseID].Name,
			Order:        i + 1,
			Sets:         sets,
			TargetSets:   targetSets,
			TargetReps:   targetReps,
			TargetWeight: in.TargetWeight,
			Instructions: in.Instructions,
		}
	}
	return entries, nil
}

// CreatePlan validates the input, resolves every exercise reference and
// persists a new plan with its derived duration.
func (s *planService) CreatePlan(ctx context.Context, userID primitive.ObjectID, input CreatePlanInput) (*domain.WorkoutPlan, error) {
	if input.Name == "" || len(input.Exercises) == 0 {
		return nil, ErrValidation
	}
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required to create a plan")
	}

	entries, err := s.resolveEntries(ctx, input.Exercises)
	if err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = domain.CategoryCustom
	}
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyBeginner
	}

	plan := &domain.WorkoutPlan{
		UserID:             userID,
		Name:               input.Name,
		Description:        input.Description,
		Exercises:          entries,
		Category:           category,
		Difficulty:         difficulty,
		Tags:               domain.NormalizeTags(input.Tags),
		TargetMuscleGroups: input.TargetMuscleGroups,
		Equipment:          input.Equipment,
		IsPublic:           input.IsPublic,
		IsActive:           true,
	}
	plan.EstimatedDuration = plan.CalculateEstimatedDuration()

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	return s.planRepo.GetByID(ctx, planID)
}

// GetPlan retrieves a single plan, enforcing ownership.
func (s *planService) GetPlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrAccessDenied
	}
	return plan, nil
}

// ListPlans retrieves the user's plans matching the filter.
func (s *planService) ListPlans(ctx context.Context, userID primitive.ObjectID, filter repository.PlanFilter) ([]domain.WorkoutPlan, error) {
	return s.planRepo.GetByUser(ctx, userID, filter)
}

// UpdatePlan applies a partial update. When exercises is non-nil the
// whole list is replaced: references are re-validated, order is
// reassigned and the duration recomputed, exactly as in CreatePlan.
func (s *planService) UpdatePlan(ctx context.Context, userID, planID primitive.ObjectID, patch domain.PlanPatch, exercises []PlanExerciseInput) (*domain.WorkoutPlan, error) {
	plan, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	plan.ApplyPatch(patch)

	if exercises != nil {
		if len(exercises) == 0 {
			return nil, ErrValidation
		}
		entries, err := s.resolveEntries(ctx, exercises)
		if err != nil {
			return nil, err
		}
		plan.Exercises = entries
		plan.EstimatedDuration = plan.CalculateEstimatedDuration()
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes a plan, enforcing ownership.
func (s *planService) DeletePlan(ctx context.Context, userID, planID primitive.ObjectID) error {
	// Ownership is checked first so a foreign plan surfaces as denied,
	// not as missing.
	if _, err := s.GetPlan(ctx, userID, planID); err != nil {
		return err
	}
	err := s.planRepo.Delete(ctx, planID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPlanNotFound
	}
	return err
}

// AddExercise appends one entry to the plan's exercise list.
func (s *planService) AddExercise(ctx context.Context, userID, planID primitive.ObjectID, entry PlanExerciseInput) (*domain.WorkoutPlan, error) {
	plan, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	entries, err := s.resolveEntries(ctx, []PlanExerciseInput{entry})
	if err != nil {
		return nil, err
	}
	plan.AddExercise(entries[0])

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// RemoveExercise drops every entry referencing the catalog id and
// renumbers the remainder 1..N.
func (s *planService) RemoveExercise(ctx context.Context, userID, planID, exerciseID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	plan.RemoveExercise(exerciseID)

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
