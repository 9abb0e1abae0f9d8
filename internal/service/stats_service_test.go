package service

import (
	"context"
	"testing"
	"time"

	"fittrack/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newStatsFixture(t *testing.T) (*statsService, *fakeLogRepo, *fakePlanRepo, *fakeSessionRepo, time.Time) {
	t.Helper()
	logRepo := newFakeLogRepo()
	planRepo := newFakePlanRepo()
	sessionRepo := newFakeSessionRepo()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewStatsService(logRepo, planRepo, sessionRepo).(*statsService)
	svc.now = func() time.Time { return now }
	return svc, logRepo, planRepo, sessionRepo, now
}

func TestGetUserStatsEmptyWindow(t *testing.T) {
	svc, _, _, _, _ := newStatsFixture(t)

	stats, err := svc.GetUserStats(context.Background(), primitive.NewObjectID(), 30)
	require.NoError(t, err)

	assert.Equal(t, "30 days", stats.Period)
	assert.Zero(t, stats.WorkoutStats.TotalWorkouts)
	assert.Zero(t, stats.WorkoutStats.TotalWeight)
	assert.Zero(t, stats.WorkoutStats.AverageRating)
	assert.Zero(t, stats.TotalActivePlans)
	assert.Zero(t, stats.UpcomingWorkouts)
}

func TestGetUserStats(t *testing.T) {
	svc, logRepo, planRepo, sessionRepo, now := newStatsFixture(t)
	userID := primitive.NewObjectID()

	// Two logs inside the 30-day window, one outside, one unrated.
	logs := []domain.WorkoutLog{
		{UserID: userID, CompletedAt: now.AddDate(0, 0, -2), Duration: 40, TotalSets: 9, TotalReps: 90, TotalWeight: 1200, CaloriesBurned: 300, Rating: 5},
		{UserID: userID, CompletedAt: now.AddDate(0, 0, -10), Duration: 30, TotalSets: 6, TotalReps: 60, TotalWeight: 800, CaloriesBurned: 200, Rating: 3},
		{UserID: userID, CompletedAt: now.AddDate(0, 0, -5), Duration: 20, TotalSets: 3, TotalReps: 30, TotalWeight: 0, CaloriesBurned: 100},
		{UserID: userID, CompletedAt: now.AddDate(0, 0, -45), Duration: 60, TotalSets: 12, TotalReps: 120, TotalWeight: 2000, CaloriesBurned: 500, Rating: 1},
	}
	for i := range logs {
		_, err := logRepo.Create(context.Background(), &logs[i])
		require.NoError(t, err)
	}

	_, err := planRepo.Create(context.Background(), &domain.WorkoutPlan{UserID: userID, Name: "Active", IsActive: true})
	require.NoError(t, err)
	_, err = planRepo.Create(context.Background(), &domain.WorkoutPlan{UserID: userID, Name: "Archived", IsActive: false})
	require.NoError(t, err)

	_, err = sessionRepo.Create(context.Background(), &domain.ScheduledWorkout{
		UserID: userID, ScheduledDate: now.AddDate(0, 0, 1), Status: domain.StatusScheduled,
	})
	require.NoError(t, err)
	_, err = sessionRepo.Create(context.Background(), &domain.ScheduledWorkout{
		UserID: userID, ScheduledDate: now.AddDate(0, 0, -1), Status: domain.StatusScheduled,
	})
	require.NoError(t, err)

	stats, err := svc.GetUserStats(context.Background(), userID, 30)
	require.NoError(t, err)

	ws := stats.WorkoutStats
	assert.Equal(t, 3, ws.TotalWorkouts)
	assert.Equal(t, 90, ws.TotalDuration)
	assert.Equal(t, 18, ws.TotalSets)
	assert.Equal(t, 180, ws.TotalReps)
	assert.Equal(t, 2000.0, ws.TotalWeight)
	assert.Equal(t, 600, ws.TotalCalories)
	// Only the two rated logs count toward the average.
	assert.Equal(t, 4.0, ws.AverageRating)

	assert.EqualValues(t, 1, stats.TotalActivePlans)
	assert.EqualValues(t, 1, stats.UpcomingWorkouts)
}

func TestGetUserStatsDefaultWindow(t *testing.T) {
	svc, _, _, _, _ := newStatsFixture(t)

	stats, err := svc.GetUserStats(context.Background(), primitive.NewObjectID(), 0)
	require.NoError(t, err)
	assert.Equal(t, "30 days", stats.Period)

	stats, err = svc.GetUserStats(context.Background(), primitive.NewObjectID(), -7)
	require.NoError(t, err)
	assert.Equal(t, "30 days", stats.Period)
}
