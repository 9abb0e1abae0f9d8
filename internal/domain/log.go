// internal/domain/log.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutLog is the immutable historical record of one completed
// workout. It is written exactly once, when the session completes, and
// never changed afterward.
type WorkoutLog struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID `bson:"user" json:"user"`
	ScheduledWorkoutID primitive.ObjectID `bson:"scheduledWorkout,omitempty" json:"scheduledWorkout,omitempty"`
	WorkoutPlanID      primitive.ObjectID `bson:"workoutPlan" json:"workoutPlan"`
	WorkoutName        string             `bson:"workoutName" json:"workoutName"` // plan name snapshot
	CompletedAt        time.Time          `bson:"completedAt" json:"completedAt"`
	Duration           int                `bson:"duration" json:"duration"` // minutes
	Exercises          []PlanExercise     `bson:"exercises" json:"exercises"`
	TotalSets          int                `bson:"totalSets" json:"totalSets"`
	TotalReps          int                `bson:"totalReps" json:"totalReps"`
	TotalWeight        float64            `bson:"totalWeight" json:"totalWeight"`
	CaloriesBurned     int                `bson:"caloriesBurned" json:"caloriesBurned"`
	Notes              string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Rating             int                `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewWorkoutLog derives the permanent record from a just-completed
// workout. TotalSets counts every set; rep and weight totals count only
// sets actually marked completed.
func NewWorkoutLog(w *ScheduledWorkout, workoutName string, completedAt time.Time) *WorkoutLog {
	log := &WorkoutLog{
		UserID:             w.UserID,
		ScheduledWorkoutID: w.ID,
		WorkoutPlanID:      w.WorkoutPlanID,
		WorkoutName:        workoutName,
		CompletedAt:        completedAt,
		Duration:           w.ActualDuration,
		Exercises:          w.Exercises,
		CaloriesBurned:     w.CaloriesBurned,
		Notes:              w.Notes,
		Rating:             w.Rating,
	}
	for _, ex := range w.Exercises {
		log.TotalSets += len(ex.Sets)
		for _, set := range ex.Sets {
			if set.Completed {
				log.TotalReps += set.Reps
				log.TotalWeight += set.Weight * float64(set.Reps)
			}
		}
	}
	return log
}

// WorkoutStats is the windowed aggregate over a user's workout logs.
// All sums are zero for an empty window; AverageRating averages only
// logs that carry a rating.
type WorkoutStats struct {
	TotalWorkouts int     `bson:"totalWorkouts" json:"totalWorkouts"`
	TotalDuration int     `bson:"totalDuration" json:"totalDuration"`
	TotalSets     int     `bson:"totalSets" json:"totalSets"`
	TotalReps     int     `bson:"totalReps" json:"totalReps"`
	TotalWeight   float64 `bson:"totalWeight" json:"totalWeight"`
	TotalCalories int     `bson:"totalCalories" json:"totalCalories"`
	AverageRating float64 `bson:"averageRating" json:"averageRating"`
}
