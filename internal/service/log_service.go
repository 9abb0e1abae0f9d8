package service

import (
	"context"
	"errors"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompleteWorkoutInput carries the optional fields a caller can attach
// when finishing a workout. Zero values mean "leave as is".
type CompleteWorkoutInput struct {
	Rating         int
	Notes          string
	CaloriesBurned int
}

// Pagination describes one page of a history listing.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// LogService turns completed workouts into immutable history and serves
// that history back.
type LogService interface {
	CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, input CompleteWorkoutInput) (*domain.ScheduledWorkout, *domain.WorkoutLog, error)
	GetLogs(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter, page, limit int) ([]domain.WorkoutLog, *Pagination, error)
	GetLog(ctx context.Context, userID, logID primitive.ObjectID) (*domain.WorkoutLog, error)
}

// logService implements the LogService interface.
type logService struct {
	sessionRepo repository.SessionRepository
	planRepo    repository.PlanRepository
	logRepo     repository.LogRepository
	now         func() time.Time
}

// NewLogService creates a new instance of logService.
func NewLogService(sessionRepo repository.SessionRepository, planRepo repository.PlanRepository, logRepo repository.LogRepository) LogService {
	return &logService{
		sessionRepo: sessionRepo,
		planRepo:    planRepo,
		logRepo:     logRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CompleteWorkout finalizes an in-progress workout and writes its
// permanent log in the same request. This is the only place a workout
// becomes history; the log is never derived again afterward.
func (s *logService) CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, input CompleteWorkoutInput) (*domain.ScheduledWorkout, *domain.WorkoutLog, error) {
	workout, err := s.sessionRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}
	if workout.UserID != userID {
		return nil, nil, ErrAccessDenied
	}

	if input.Rating != 0 {
		workout.Rating = input.Rating
	}
	if input.Notes != "" {
		workout.Notes = input.Notes
	}
	if input.CaloriesBurned != 0 {
		workout.CaloriesBurned = input.CaloriesBurned
	}

	completedAt := s.now()
	if !workout.Complete(completedAt) {
		return nil, nil, ErrInvalidTransition
	}

	// The plan may have been deleted since scheduling; the log still
	// gets written, just without the plan's name.
	workoutName := "Workout"
	if plan, err := s.planRepo.GetByID(ctx, workout.WorkoutPlanID); err == nil {
		workoutName = plan.Name
	}

	if err := s.sessionRepo.Update(ctx, workout); err != nil {
		return nil, nil, err
	}

	log := domain.NewWorkoutLog(workout, workoutName, completedAt)
	logID, err := s.logRepo.Create(ctx, log)
	if err != nil {
		return nil, nil, err
	}
	log.ID = logID

	return workout, log, nil
}

// GetLogs returns one page of the user's history, newest first.
func (s *logService) GetLogs(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter, page, limit int) ([]domain.WorkoutLog, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	logs, err := s.logRepo.GetByUser(ctx, userID, filter, page, limit)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.logRepo.Count(ctx, userID, filter)
	if err != nil {
		return nil, nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return logs, &Pagination{Current: page, Pages: pages, Total: total}, nil
}

// GetLog retrieves a single log entry, enforcing ownership.
func (s *logService) GetLog(ctx context.Context, userID, logID primitive.ObjectID) (*domain.WorkoutLog, error) {
	log, err := s.logRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	if log.UserID != userID {
		// The original API scoped the query by owner, so a foreign log
		// also reads as missing.
		return nil, ErrLogNotFound
	}
	return log, nil
}
