// internal/domain/session.go
package domain

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutStatus is the lifecycle state of a scheduled workout.
type WorkoutStatus string

const (
	StatusScheduled  WorkoutStatus = "scheduled"
	StatusInProgress WorkoutStatus = "in-progress"
	StatusCompleted  WorkoutStatus = "completed"
	StatusCancelled  WorkoutStatus = "cancelled"
	StatusSkipped    WorkoutStatus = "skipped"
)

// transitions is the full state machine: scheduled -> in-progress ->
// completed, with side exits to cancelled (from either live state) and
// skipped (only before starting). Terminal states allow nothing.
var transitions = map[WorkoutStatus][]WorkoutStatus{
	StatusScheduled:  {StatusInProgress, StatusCancelled, StatusSkipped},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// IsValid reports whether s is one of the known statuses.
func (s WorkoutStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusSkipped:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s WorkoutStatus) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

// CanTransitionTo reports whether the state machine permits moving from
// s to next. Every status change (start, complete, manual edit) goes
// through this single check.
func (s WorkoutStatus) CanTransitionTo(next WorkoutStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

var timeOfDayRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeOfDay reports whether v is a 24-hour "HH:MM" time string.
func ValidTimeOfDay(v string) bool {
	return timeOfDayRe.MatchString(v)
}

// DefaultReminderMinutes is the lead time for workout reminders when the
// caller does not pick one. Delivery itself is handled elsewhere.
const DefaultReminderMinutes = 30

// ScheduledWorkout is a dated, timed instance of a plan. Exercises is a
// deep copy taken at schedule time; later plan edits never reach it.
type ScheduledWorkout struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID               primitive.ObjectID `bson:"user" json:"user"`
	WorkoutPlanID        primitive.ObjectID `bson:"workoutPlan" json:"workoutPlan"`
	ScheduledDate        time.Time          `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime        string             `bson:"scheduledTime" json:"scheduledTime"` // "HH:MM", 24-hour
	Status               WorkoutStatus      `bson:"status" json:"status"`
	ActualStartTime      *time.Time         `bson:"actualStartTime,omitempty" json:"actualStartTime,omitempty"`
	ActualEndTime        *time.Time         `bson:"actualEndTime,omitempty" json:"actualEndTime,omitempty"`
	ActualDuration       int                `bson:"actualDuration,omitempty" json:"actualDuration,omitempty"` // minutes
	Exercises            []PlanExercise     `bson:"exercises" json:"exercises"`
	CompletionPercentage int                `bson:"completionPercentage" json:"completionPercentage"`
	CaloriesBurned       int                `bson:"caloriesBurned,omitempty" json:"caloriesBurned,omitempty"`
	Notes                string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Rating               int                `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5, 0 = unset
	ReminderSent         bool               `bson:"reminderSent" json:"reminderSent"`
	ReminderTime         int                `bson:"reminderTime" json:"reminderTime"` // minutes before start
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SnapshotExercises deep-copies a plan's exercise list for progress
// tracking, resetting every set and exercise to not-completed.
func SnapshotExercises(src []PlanExercise) []PlanExercise {
	out := make([]PlanExercise, len(src))
	for i, ex := range src {
		cp := ex
		cp.IsCompleted = false
		cp.Sets = make([]ExerciseSet, len(ex.Sets))
		for j, set := range ex.Sets {
			set.Completed = false
			cp.Sets[j] = set
		}
		out[i] = cp
	}
	return out
}

// Start moves the workout into in-progress and records the start time.
// The caller must have checked the transition already; this reports
// false when the workout is not in a startable state.
func (w *ScheduledWorkout) Start(now time.Time) bool {
	if !w.Status.CanTransitionTo(StatusInProgress) {
		return false
	}
	w.Status = StatusInProgress
	w.ActualStartTime = &now
	return true
}

// Complete finalizes the workout: end time, whole-minute duration when a
// start time was recorded, and the final completion percentage.
func (w *ScheduledWorkout) Complete(now time.Time) bool {
	if !w.Status.CanTransitionTo(StatusCompleted) {
		return false
	}
	w.Status = StatusCompleted
	w.ActualEndTime = &now
	if w.ActualStartTime != nil {
		elapsed := now.Sub(*w.ActualStartTime)
		w.ActualDuration = int((elapsed + time.Minute - 1) / time.Minute)
	}
	w.RecalcCompletion()
	return true
}

// SetPatch is a partial update of one set's progress fields. Nil means
// "leave unchanged".
type SetPatch struct {
	Reps      *int
	Weight    *float64
	Completed *bool
	Notes     *string
}

// ApplySetPatch merges patch into the addressed set and recomputes the
// exercise's completion flag and the workout-level percentage. Reports
// false when either index is out of range.
func (w *ScheduledWorkout) ApplySetPatch(exerciseIndex, setIndex int, patch SetPatch) bool {
	if exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return false
	}
	ex := &w.Exercises[exerciseIndex]
	if setIndex < 0 || setIndex >= len(ex.Sets) {
		return false
	}
	set := &ex.Sets[setIndex]
	if patch.Reps != nil {
		set.Reps = *patch.Reps
	}
	if patch.Weight != nil {
		set.Weight = *patch.Weight
	}
	if patch.Completed != nil {
		set.Completed = *patch.Completed
	}
	if patch.Notes != nil {
		set.Notes = *patch.Notes
	}

	completed := 0
	for _, s := range ex.Sets {
		if s.Completed {
			completed++
		}
	}
	ex.IsCompleted = completed == len(ex.Sets)

	w.RecalcCompletion()
	return true
}

// RecalcCompletion derives CompletionPercentage from the current set
// state: round(100 * completed / total), 0 for a workout with no sets.
func (w *ScheduledWorkout) RecalcCompletion() {
	total, completed := 0, 0
	for _, ex := range w.Exercises {
		total += len(ex.Sets)
		for _, s := range ex.Sets {
			if s.Completed {
				completed++
			}
		}
	}
	if total == 0 {
		w.CompletionPercentage = 0
		return
	}
	w.CompletionPercentage = (completed*100 + total/2) / total
}

// SchedulePatch is a partial manual edit of a scheduled workout. Status
// changes still go through the state machine.
type SchedulePatch struct {
	ScheduledDate *time.Time
	ScheduledTime *string
	Status        *WorkoutStatus
	Notes         *string
	Rating        *int
}

// ApplyPatch merges the provided fields. Reports false when a requested
// status change is not a legal transition; no fields are touched in
// that case.
func (w *ScheduledWorkout) ApplyPatch(patch SchedulePatch) bool {
	if patch.Status != nil && !w.Status.CanTransitionTo(*patch.Status) {
		return false
	}
	if patch.ScheduledDate != nil {
		w.ScheduledDate = *patch.ScheduledDate
	}
	if patch.ScheduledTime != nil {
		w.ScheduledTime = *patch.ScheduledTime
	}
	if patch.Status != nil {
		w.Status = *patch.Status
	}
	if patch.Notes != nil {
		w.Notes = *patch.Notes
	}
	if patch.Rating != nil {
		w.Rating = *patch.Rating
	}
	return true
}
