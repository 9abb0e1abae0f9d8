package repository

import (
	"context"
	"time"

	"fittrack/workout-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ExerciseFilter narrows a catalog listing. Zero values mean "no filter".
type ExerciseFilter struct {
	Category   string
	Difficulty string
	Search     string // case-insensitive substring over name
}

// ExerciseCatalog is the read-mostly interface to the exercise reference
// data. InsertMany exists only for seeding.
type ExerciseCatalog interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error)
	List(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
	InsertMany(ctx context.Context, exercises []domain.Exercise) error
	Count(ctx context.Context) (int64, error)
}

// PlanFilter narrows a user's plan listing. A nil IsActive means both
// active and inactive plans.
type PlanFilter struct {
	Category   string
	Difficulty string
	IsActive   *bool
	Search     string // case-insensitive substring over name/description
}

// PlanRepository defines the interface for interacting with workout
// plan templates.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID, filter PlanFilter) ([]domain.WorkoutPlan, error)
	Update(ctx context.Context, plan *domain.WorkoutPlan) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	CountActive(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// SessionFilter narrows a user's scheduled workout listing. Upcoming
// (date >= Now, status scheduled/in-progress) takes precedence over an
// explicit status list when both are set, matching the query the
// original API built.
type SessionFilter struct {
	Statuses  []domain.WorkoutStatus
	Upcoming  bool
	Now       time.Time // reference time for Upcoming
	StartDate *time.Time
	EndDate   *time.Time
}

// SessionRepository defines the interface for interacting with
// scheduled workouts.
type SessionRepository interface {
	Create(ctx context.Context, workout *domain.ScheduledWorkout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ScheduledWorkout, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID, filter SessionFilter) ([]domain.ScheduledWorkout, error)
	Update(ctx context.Context, workout *domain.ScheduledWorkout) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	CountUpcoming(ctx context.Context, userID primitive.ObjectID, now time.Time) (int64, error)
}

// LogFilter narrows a workout history query to a completion-date range.
type LogFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// LogRepository defines the interface for interacting with the
// immutable workout history. There is deliberately no update or delete:
// logs are written once.
type LogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutLog, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID, filter LogFilter, page, limit int) ([]domain.WorkoutLog, error)
	Count(ctx context.Context, userID primitive.ObjectID, filter LogFilter) (int64, error)
	AggregateStats(ctx context.Context, userID primitive.ObjectID, since time.Time) (*domain.WorkoutStats, error)
}
