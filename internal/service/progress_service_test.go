package service

import (
	"context"
	"testing"

	"fittrack/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpdateSetProgress(t *testing.T) {
	f := newScheduleFixture(t)
	w := f.schedule(t, f.now.AddDate(0, 0, 1))
	svc := NewProgressService(f.sessionRepo)

	done := true
	reps := 8

	updated, err := svc.UpdateSetProgress(context.Background(), f.userID, w.ID, 0, 0, domain.SetPatch{
		Completed: &done,
		Reps:      &reps,
	})
	require.NoError(t, err)

	set := updated.Exercises[0].Sets[0]
	assert.True(t, set.Completed)
	assert.Equal(t, 8, set.Reps)
	// 1 of 3 default sets: round(33.33) = 33.
	assert.Equal(t, 33, updated.CompletionPercentage)

	// The update is persisted, not just returned.
	stored, err := f.sessionRepo.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, stored.CompletionPercentage)
}

func TestUpdateSetProgressErrors(t *testing.T) {
	f := newScheduleFixture(t)
	w := f.schedule(t, f.now.AddDate(0, 0, 1))
	svc := NewProgressService(f.sessionRepo)

	done := true
	patch := domain.SetPatch{Completed: &done}

	_, err := svc.UpdateSetProgress(context.Background(), f.userID, primitive.NewObjectID(), 0, 0, patch)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.UpdateSetProgress(context.Background(), primitive.NewObjectID(), w.ID, 0, 0, patch)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.UpdateSetProgress(context.Background(), f.userID, w.ID, 5, 0, patch)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = svc.UpdateSetProgress(context.Background(), f.userID, w.ID, 0, 99, patch)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
