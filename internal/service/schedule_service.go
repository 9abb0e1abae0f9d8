package service

import (
	"context"
	"errors"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleService instantiates scheduled workouts from plan snapshots
// and advances them through the status state machine.
type ScheduleService interface {
	Schedule(ctx context.Context, userID, planID primitive.ObjectID, date time.Time, timeOfDay string, reminderMinutes int) (*domain.ScheduledWorkout, error)
	GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.ScheduledWorkout, error)
	ListWorkouts(ctx context.Context, userID primitive.ObjectID, filter repository.SessionFilter) ([]domain.ScheduledWorkout, error)
	StartWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.ScheduledWorkout, error)
	UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, patch domain.SchedulePatch) (*domain.ScheduledWorkout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error
}

// scheduleService implements the ScheduleService interface.
type scheduleService struct {
	sessionRepo repository.SessionRepository
	planRepo    repository.PlanRepository
	now         func() time.Time
}

// NewScheduleService creates a new instance of scheduleService.
func NewScheduleService(sessionRepo repository.SessionRepository, planRepo repository.PlanRepository) ScheduleService {
	return &scheduleService{
		sessionRepo: sessionRepo,
		planRepo:    planRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Schedule creates a new scheduled workout from a plan the caller owns.
// The plan's exercise list is deep-copied with all progress reset, so
// later plan edits never reach this session.
func (s *scheduleService) Schedule(ctx context.Context, userID, planID primitive.ObjectID, date time.Time, timeOfDay string, reminderMinutes int) (*domain.ScheduledWorkout, error) {
	if !domain.ValidTimeOfDay(timeOfDay) {
		return nil, ErrValidation
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	// A plan belonging to someone else is reported as missing, the same
	// as the owner-scoped query the original API ran.
	if plan.UserID != userID {
		return nil, ErrPlanNotFound
	}

	if reminderMinutes <= 0 {
		reminderMinutes = domain.DefaultReminderMinutes
	}

	workout := &domain.ScheduledWorkout{
		UserID:        userID,
		WorkoutPlanID: planID,
		ScheduledDate: date,
		ScheduledTime: timeOfDay,
		Status:        domain.StatusScheduled,
		Exercises:     domain.SnapshotExercises(plan.Exercises),
		ReminderTime:  reminderMinutes,
	}

	workoutID, err := s.sessionRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	return s.sessionRepo.GetByID(ctx, workoutID)
}

// GetWorkout retrieves a single scheduled workout, enforcing ownership.
func (s *scheduleService) GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.ScheduledWorkout, error) {
	workout, err := s.sessionRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrAccessDenied
	}
	return workout, nil
}

// ListWorkouts retrieves the user's scheduled workouts matching the
// filter. The Upcoming shortcut gets its reference time here.
func (s *scheduleService) ListWorkouts(ctx context.Context, userID primitive.ObjectID, filter repository.SessionFilter) ([]domain.ScheduledWorkout, error) {
	if filter.Upcoming {
		filter.Now = s.now()
	}
	return s.sessionRepo.GetByUser(ctx, userID, filter)
}

// StartWorkout moves a scheduled workout into in-progress and records
// the actual start time.
func (s *scheduleService) StartWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.ScheduledWorkout, error) {
	workout, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	if !workout.Start(s.now()) {
		return nil, ErrInvalidTransition
	}

	if err := s.sessionRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// UpdateWorkout applies a manual correction (date, time, notes, rating,
// or a direct status change such as skipped/cancelled). Terminal
// sessions cannot be edited.
func (s *scheduleService) UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, patch domain.SchedulePatch) (*domain.ScheduledWorkout, error) {
	workout, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.Status.IsTerminal() {
		return nil, ErrInvalidTransition
	}
	if patch.ScheduledTime != nil && !domain.ValidTimeOfDay(*patch.ScheduledTime) {
		return nil, ErrValidation
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, ErrValidation
	}

	if !workout.ApplyPatch(patch) {
		return nil, ErrInvalidTransition
	}

	if err := s.sessionRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// DeleteWorkout removes a scheduled workout. Completed sessions are
// kept: their log is the permanent record and deleting the session that
// produced it would orphan history.
func (s *scheduleService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	workout, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return err
	}
	if workout.Status == domain.StatusCompleted {
		return ErrInvalidTransition
	}

	err = s.sessionRepo.Delete(ctx, workoutID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSessionNotFound
	}
	return err
}
