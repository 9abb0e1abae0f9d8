package service

import (
	"context"
	"errors"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseService serves the read-only exercise reference catalog.
// Content management happens out of band (see cmd/seed).
type ExerciseService interface {
	GetExercise(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error)
	SeedCatalog(ctx context.Context, exercises []domain.Exercise) (int, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	catalog repository.ExerciseCatalog
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(catalog repository.ExerciseCatalog) ExerciseService {
	return &exerciseService{catalog: catalog}
}

// GetExercise retrieves a single catalog entry.
func (s *exerciseService) GetExercise(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.catalog.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// ListExercises retrieves catalog entries matching the filter.
func (s *exerciseService) ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	return s.catalog.List(ctx, filter)
}

// SeedCatalog bulk-loads the built-in exercise list. A non-empty
// catalog is left untouched; returns the number of entries inserted.
func (s *exerciseService) SeedCatalog(ctx context.Context, exercises []domain.Exercise) (int, error) {
	count, err := s.catalog.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	if err := s.catalog.InsertMany(ctx, exercises); err != nil {
		return 0, err
	}
	return len(exercises), nil
}
