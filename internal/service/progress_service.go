package service

import (
	"context"
	"errors"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressService applies set-level updates to an in-progress workout
// and keeps the derived completion state current.
type ProgressService interface {
	UpdateSetProgress(ctx context.Context, userID, workoutID primitive.ObjectID, exerciseIndex, setIndex int, patch domain.SetPatch) (*domain.ScheduledWorkout, error)
}

// progressService implements the ProgressService interface.
type progressService struct {
	sessionRepo repository.SessionRepository
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(sessionRepo repository.SessionRepository) ProgressService {
	return &progressService{sessionRepo: sessionRepo}
}

// UpdateSetProgress merges the provided fields into the addressed set.
// Only the provided fields change. The exercise's completion flag and
// the workout-level percentage are recomputed on every call, so a
// progress read during the workout is never stale.
func (s *progressService) UpdateSetProgress(ctx context.Context, userID, workoutID primitive.ObjectID, exerciseIndex, setIndex int, patch domain.SetPatch) (*domain.ScheduledWorkout, error) {
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

	if !workout.ApplySetPatch(exerciseIndex, setIndex, patch) {
		return nil, ErrIndexOutOfRange
	}

	if err := s.sessionRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}
