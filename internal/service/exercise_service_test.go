package service

import (
	"context"
	"testing"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetExercise(t *testing.T) {
	catalog := newFakeCatalog()
	squats := catalog.add("Squats")
	svc := NewExerciseService(catalog)

	ex, err := svc.GetExercise(context.Background(), squats)
	require.NoError(t, err)
	assert.Equal(t, "Squats", ex.Name)

	_, err = svc.GetExercise(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestSeedCatalog(t *testing.T) {
	catalog := newFakeCatalog()
	svc := NewExerciseService(catalog)

	seed := []domain.Exercise{{Name: "Push-ups"}, {Name: "Plank"}}

	inserted, err := svc.SeedCatalog(context.Background(), seed)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// A populated catalog is never reseeded.
	inserted, err = svc.SeedCatalog(context.Background(), seed)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	all, err := svc.ListExercises(context.Background(), repository.ExerciseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
