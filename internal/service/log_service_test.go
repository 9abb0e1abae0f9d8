package service

import (
	"context"
	"testing"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCompleteWorkout(t *testing.T) {
	f := newScheduleFixture(t)
	w := f.schedule(t, f.now.AddDate(0, 0, 1))

	_, err := f.svc.StartWorkout(context.Background(), f.userID, w.ID)
	require.NoError(t, err)

	// Mark 2 of the 3 default sets done before completing.
	progressSvc := NewProgressService(f.sessionRepo)
	done := true
	for setIdx := 0; setIdx < 2; setIdx++ {
		_, err = progressSvc.UpdateSetProgress(context.Background(), f.userID, w.ID, 0, setIdx, domain.SetPatch{Completed: &done})
		require.NoError(t, err)
	}

	logRepo := newFakeLogRepo()
	logSvc := NewLogService(f.sessionRepo, f.planRepo, logRepo).(*logService)
	completedAt := f.now.Add(45 * time.Minute)
	logSvc.now = func() time.Time { return completedAt }

	workout, log, err := logSvc.CompleteWorkout(context.Background(), f.userID, w.ID, CompleteWorkoutInput{
		Rating:         4,
		Notes:          "solid session",
		CaloriesBurned: 280,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, workout.Status)
	assert.Equal(t, 45, workout.ActualDuration)
	assert.Equal(t, 67, workout.CompletionPercentage)
	assert.Equal(t, 4, workout.Rating)

	require.NotNil(t, log)
	assert.False(t, log.ID.IsZero())
	assert.Equal(t, "Leg Day", log.WorkoutName)
	assert.True(t, log.CompletedAt.Equal(completedAt))
	assert.Equal(t, 45, log.Duration)
	assert.Equal(t, 3, log.TotalSets)
	assert.Equal(t, 2*domain.DefaultTargetReps, log.TotalReps)
	assert.Equal(t, 280, log.CaloriesBurned)
	assert.Equal(t, "solid session", log.Notes)

	// Exactly one log was written.
	total, err := logRepo.Count(context.Background(), f.userID, repository.LogFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	// The session is terminal; completing again must fail without a
	// second log appearing.
	_, _, err = logSvc.CompleteWorkout(context.Background(), f.userID, w.ID, CompleteWorkoutInput{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	total, _ = logRepo.Count(context.Background(), f.userID, repository.LogFilter{})
	assert.EqualValues(t, 1, total)
}

func TestCompleteWorkoutErrors(t *testing.T) {
	f := newScheduleFixture(t)
	w := f.schedule(t, f.now.AddDate(0, 0, 1))
	logSvc := NewLogService(f.sessionRepo, f.planRepo, newFakeLogRepo())

	// Still scheduled: must be started first.
	_, _, err := logSvc.CompleteWorkout(context.Background(), f.userID, w.ID, CompleteWorkoutInput{})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, _, err = logSvc.CompleteWorkout(context.Background(), primitive.NewObjectID(), w.ID, CompleteWorkoutInput{})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, _, err = logSvc.CompleteWorkout(context.Background(), f.userID, primitive.NewObjectID(), CompleteWorkoutInput{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCompleteWorkoutPlanDeleted(t *testing.T) {
	f := newScheduleFixture(t)
	w := f.schedule(t, f.now.AddDate(0, 0, 1))

	_, err := f.svc.StartWorkout(context.Background(), f.userID, w.ID)
	require.NoError(t, err)

	// Deleting the plan must not block completion; the log falls back
	// to a generic name.
	require.NoError(t, f.planRepo.Delete(context.Background(), f.plan.ID, f.userID))

	logSvc := NewLogService(f.sessionRepo, f.planRepo, newFakeLogRepo())
	_, log, err := logSvc.CompleteWorkout(context.Background(), f.userID, w.ID, CompleteWorkoutInput{})
	require.NoError(t, err)
	assert.Equal(t, "Workout", log.WorkoutName)
}

func TestGetLogs(t *testing.T) {
	logRepo := newFakeLogRepo()
	userID := primitive.NewObjectID()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := logRepo.Create(context.Background(), &domain.WorkoutLog{
			UserID:      userID,
			WorkoutName: "Workout",
			CompletedAt: base.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	logSvc := NewLogService(newFakeSessionRepo(), newFakePlanRepo(), logRepo)

	logs, page, err := logSvc.GetLogs(context.Background(), userID, repository.LogFilter{}, 1, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// Newest first.
	assert.True(t, logs[0].CompletedAt.After(logs[1].CompletedAt))
	assert.Equal(t, 1, page.Current)
	assert.Equal(t, 3, page.Pages)
	assert.EqualValues(t, 5, page.Total)

	last, page, err := logSvc.GetLogs(context.Background(), userID, repository.LogFilter{}, 3, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)
	assert.Equal(t, 3, page.Current)

	// Date range narrows the result and the totals.
	start := base.AddDate(0, 0, 3)
	ranged, page, err := logSvc.GetLogs(context.Background(), userID, repository.LogFilter{StartDate: &start}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
	assert.EqualValues(t, 2, page.Total)
}

func TestGetLog(t *testing.T) {
	logRepo := newFakeLogRepo()
	userID := primitive.NewObjectID()
	logID, err := logRepo.Create(context.Background(), &domain.WorkoutLog{
		UserID:      userID,
		WorkoutName: "Push Day",
		CompletedAt: time.Now(),
	})
	require.NoError(t, err)

	logSvc := NewLogService(newFakeSessionRepo(), newFakePlanRepo(), logRepo)

	log, err := logSvc.GetLog(context.Background(), userID, logID)
	require.NoError(t, err)
	assert.Equal(t, "Push Day", log.WorkoutName)

	// A foreign log reads as missing, not denied.
	_, err = logSvc.GetLog(context.Background(), primitive.NewObjectID(), logID)
	assert.ErrorIs(t, err, ErrLogNotFound)

	_, err = logSvc.GetLog(context.Background(), userID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrLogNotFound)
}
