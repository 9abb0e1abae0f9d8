package service

import (
	"context"
	"fmt"
	"time"

	"fittrack/workout-app/internal/domain"
	"fittrack/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultStatsWindowDays is the lookback window when the caller does
// not pick one.
const DefaultStatsWindowDays = 30

// UserStats is the combined stats view: the windowed log aggregation
// plus simple counts over live plan/session state.
type UserStats struct {
	Period           string              `json:"period"`
	WorkoutStats     domain.WorkoutStats `json:"workoutStats"`
	TotalActivePlans int64               `json:"totalActivePlans"`
	UpcomingWorkouts int64               `json:"upcomingWorkouts"`
}

// StatsService computes windowed aggregate statistics over a user's
// workout history.
type StatsService interface {
	GetUserStats(ctx context.Context, userID primitive.ObjectID, windowDays int) (*UserStats, error)
}

// statsService implements the StatsService interface.
type statsService struct {
	logRepo     repository.LogRepository
	planRepo    repository.PlanRepository
	sessionRepo repository.SessionRepository
	now         func() time.Time
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(logRepo repository.LogRepository, planRepo repository.PlanRepository, sessionRepo repository.SessionRepository) StatsService {
	return &statsService{
		logRepo:     logRepo,
		planRepo:    planRepo,
		sessionRepo: sessionRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// GetUserStats aggregates the logs completed in the last windowDays
// days and attaches the active-plan and upcoming-session counts. An
// empty window yields a zeroed record, never a division error.
func (s *statsService) GetUserStats(ctx context.Context, userID primitive.ObjectID, windowDays int) (*UserStats, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}

	now := s.now()
	since := now.AddDate(0, 0, -windowDays)

	workoutStats, err := s.logRepo.AggregateStats(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	activePlans, err := s.planRepo.CountActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.sessionRepo.CountUpcoming(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		Period:           fmt.Sprintf("%d days", windowDays),
		WorkoutStats:     *workoutStats,
		TotalActivePlans: activePlans,
		UpcomingWorkouts: upcoming,
	}, nil
}
