// internal/domain/workout.go
package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan categories and difficulty levels. Kept as plain strings in the
// documents; these constants are the accepted vocabulary.
const (
	CategoryStrength    = "strength"
	CategoryCardio      = "cardio"
	CategoryFlexibility = "flexibility"
	CategoryMixed       = "mixed"
	CategoryCustom      = "custom"

	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Defaults applied when a plan entry omits explicit set data.
const (
	DefaultTargetSets  = 3
	DefaultTargetReps  = 10
	DefaultRestSeconds = 60

	// Assumed working time for one set, used by the duration estimate.
	secondsPerSet = 45
)

// ExerciseSet is one unit of work (reps at a weight) inside a plan entry.
type ExerciseSet struct {
	SetNumber int     `bson:"setNumber" json:"setNumber"`
	Reps      int     `bson:"reps" json:"reps"`
	Weight    float64 `bson:"weight" json:"weight"`
	RestTime  int     `bson:"restTime" json:"restTime"` // seconds
	Completed bool    `bson:"completed" json:"completed"`
	Notes     string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

// PlanExercise is one entry in a plan's exercise list. ExerciseName is
// denormalized from the catalog at insert time so lists render without
// a second lookup.
type PlanExercise struct {
	ExerciseID   primitive.ObjectID `bson:"exercise" json:"exercise"`
	ExerciseName string             `bson:"exerciseName" json:"exerciseName"`
	Order        int                `bson:"order" json:"order"` // 1-based, contiguous
	Sets         []ExerciseSet      `bson:"sets" json:"sets"`
	TargetSets   int                `bson:"targetSets" json:"targetSets"`
	TargetReps   int                `bson:"targetReps" json:"targetReps"`
	TargetWeight float64            `bson:"targetWeight" json:"targetWeight"`
	Instructions string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	IsCompleted  bool               `bson:"isCompleted" json:"isCompleted"`
}

// DefaultSets builds the generated set list for an entry that did not
// supply one: targetSets sets, each at targetReps/targetWeight with the
// default rest time and completed=false.
func DefaultSets(targetSets, targetReps int, targetWeight float64) []ExerciseSet {
	if targetSets <= 0 {
		targetSets = DefaultTargetSets
	}
	if targetReps <= 0 {
		targetReps = DefaultTargetReps
	}
	sets := make([]ExerciseSet, targetSets)
	for i := range sets {
		sets[i] = ExerciseSet{
			SetNumber: i + 1,
			Reps:      targetReps,
			Weight:    targetWeight,
			RestTime:  DefaultRestSeconds,
			Completed: false,
		}
	}
	return sets
}

// WorkoutPlan is a reusable workout template owned by one user.
type WorkoutPlan struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID `bson:"user" json:"user"`
	Name               string             `bson:"name" json:"name"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	Exercises          []PlanExercise     `bson:"exercises" json:"exercises"`
	Category           string             `bson:"category" json:"category"`
	Difficulty         string             `bson:"difficulty" json:"difficulty"`
	EstimatedDuration  int                `bson:"estimatedDuration" json:"estimatedDuration"` // minutes, always derived
	TargetMuscleGroups []string           `bson:"targetMuscleGroups,omitempty" json:"targetMuscleGroups,omitempty"`
	Equipment          []string           `bson:"equipment,omitempty" json:"equipment,omitempty"`
	IsPublic           bool               `bson:"isPublic" json:"isPublic"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
	Tags               []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CalculateEstimatedDuration estimates the whole-minute duration of the
// plan: per exercise, targetSets * (working time + rest time of the
// first set, 60s when the entry has no sets), summed and rounded up.
func (p *WorkoutPlan) CalculateEstimatedDuration() int {
	totalSeconds := 0
	for _, ex := range p.Exercises {
		rest := DefaultRestSeconds
		if len(ex.Sets) > 0 {
			rest = ex.Sets[0].RestTime
		}
		totalSeconds += ex.TargetSets * (secondsPerSet + rest)
	}
	return (totalSeconds + 59) / 60
}

// AddExercise appends an entry at the end of the list and keeps the
// derived fields (order, estimated duration) consistent.
func (p *WorkoutPlan) AddExercise(entry PlanExercise) {
	entry.Order = len(p.Exercises) + 1
	p.Exercises = append(p.Exercises, entry)
	p.EstimatedDuration = p.CalculateEstimatedDuration()
}

// RemoveExercise drops every entry referencing the given catalog id and
// renumbers the remainder. Returns the number of entries removed.
func (p *WorkoutPlan) RemoveExercise(exerciseID primitive.ObjectID) int {
	kept := p.Exercises[:0]
	removed := 0
	for _, ex := range p.Exercises {
		if ex.ExerciseID == exerciseID {
			removed++
			continue
		}
		kept = append(kept, ex)
	}
	p.Exercises = kept
	p.RenumberExercises()
	p.EstimatedDuration = p.CalculateEstimatedDuration()
	return removed
}

// RenumberExercises reassigns Order to the 1-based array position so the
// sequence is always 1..N with no gaps.
func (p *WorkoutPlan) RenumberExercises() {
	for i := range p.Exercises {
		p.Exercises[i].Order = i + 1
	}
}

// PlanPatch is a partial update of a plan's scalar fields. Nil means
// "leave unchanged". The exercise list is patched separately because it
// needs catalog re-validation.
type PlanPatch struct {
	Name               *string
	Description        *string
	Category           *string
	Difficulty         *string
	Tags               []string
	TargetMuscleGroups []string
	Equipment          []string
	IsPublic           *bool
	IsActive           *bool
}

// ApplyPatch merges the provided fields into the plan. Only the fields
// listed here are patchable; derived fields stay derived.
func (p *WorkoutPlan) ApplyPatch(patch PlanPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Difficulty != nil {
		p.Difficulty = *patch.Difficulty
	}
	if patch.Tags != nil {
		p.Tags = NormalizeTags(patch.Tags)
	}
	if patch.TargetMuscleGroups != nil {
		p.TargetMuscleGroups = patch.TargetMuscleGroups
	}
	if patch.Equipment != nil {
		p.Equipment = patch.Equipment
	}
	if patch.IsPublic != nil {
		p.IsPublic = *patch.IsPublic
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
}

// NormalizeTags lowercases and trims tags, dropping empties.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
