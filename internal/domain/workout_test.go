package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func planEntry(id primitive.ObjectID, targetSets, rest int) PlanExercise {
	sets := make([]ExerciseSet, targetSets)
	for i := range sets {
		sets[i] = ExerciseSet{SetNumber: i + 1, Reps: 10, RestTime: rest}
	}
	return PlanExercise{
		ExerciseID: id,
		TargetSets: targetSets,
		TargetReps: 10,
		Sets:       sets,
	}
}

func TestCalculateEstimatedDuration(t *testing.T) {
	t.Run("sums per-exercise working and rest time", func(t *testing.T) {
		// 3 sets at 60s rest plus 2 sets at 90s rest:
		// 3*(45+60) + 2*(45+90) = 585s, rounded up to 10 minutes.
		plan := WorkoutPlan{Exercises: []PlanExercise{
			planEntry(primitive.NewObjectID(), 3, 60),
			planEntry(primitive.NewObjectID(), 2, 90),
		}}
		assert.Equal(t, 10, plan.CalculateEstimatedDuration())
	})

	t.Run("entry without sets falls back to default rest", func(t *testing.T) {
		plan := WorkoutPlan{Exercises: []PlanExercise{
			{ExerciseID: primitive.NewObjectID(), TargetSets: 3},
		}}
		// 3*(45+60) = 315s -> 6 minutes.
		assert.Equal(t, 6, plan.CalculateEstimatedDuration())
	})

	t.Run("empty plan is zero", func(t *testing.T) {
		plan := WorkoutPlan{}
		assert.Equal(t, 0, plan.CalculateEstimatedDuration())
	})

	t.Run("always rounds up to a whole minute", func(t *testing.T) {
		plan := WorkoutPlan{Exercises: []PlanExercise{
			planEntry(primitive.NewObjectID(), 1, 16), // 61s
		}}
		assert.Equal(t, 2, plan.CalculateEstimatedDuration())
	})
}

func TestDefaultSets(t *testing.T) {
	t.Run("generates one set per target", func(t *testing.T) {
		sets := DefaultSets(4, 8, 50)
		require.Len(t, sets, 4)
		for i, set := range sets {
			assert.Equal(t, i+1, set.SetNumber)
			assert.Equal(t, 8, set.Reps)
			assert.Equal(t, 50.0, set.Weight)
			assert.Equal(t, DefaultRestSeconds, set.RestTime)
			assert.False(t, set.Completed)
		}
	})

	t.Run("falls back to defaults for non-positive targets", func(t *testing.T) {
		sets := DefaultSets(0, 0, 0)
		require.Len(t, sets, DefaultTargetSets)
		assert.Equal(t, DefaultTargetReps, sets[0].Reps)
	})
}

func TestAddExercise(t *testing.T) {
	plan := WorkoutPlan{Exercises: []PlanExercise{
		planEntry(primitive.NewObjectID(), 3, 60),
	}}
	before := plan.CalculateEstimatedDuration()

	plan.AddExercise(planEntry(primitive.NewObjectID(), 2, 90))

	require.Len(t, plan.Exercises, 2)
	assert.Equal(t, 2, plan.Exercises[1].Order)
	assert.Greater(t, plan.EstimatedDuration, before)
}

func TestRemoveExercise(t *testing.T) {
	target := primitive.NewObjectID()
	other := primitive.NewObjectID()

	plan := WorkoutPlan{Exercises: []PlanExercise{
		planEntry(target, 3, 60),
		planEntry(other, 2, 60),
		planEntry(target, 1, 60), // duplicate reference, removed too
	}}
	plan.RenumberExercises()

	removed := plan.RemoveExercise(target)

	assert.Equal(t, 2, removed)
	require.Len(t, plan.Exercises, 1)
	assert.Equal(t, other, plan.Exercises[0].ExerciseID)
	assert.Equal(t, 1, plan.Exercises[0].Order)
	assert.Equal(t, plan.CalculateEstimatedDuration(), plan.EstimatedDuration)

	assert.Equal(t, 0, plan.RemoveExercise(primitive.NewObjectID()))
}

func TestRenumberExercises(t *testing.T) {
	plan := WorkoutPlan{Exercises: []PlanExercise{
		{Order: 7}, {Order: 2}, {Order: 99},
	}}
	plan.RenumberExercises()
	for i, ex := range plan.Exercises {
		assert.Equal(t, i+1, ex.Order)
	}
}

func TestPlanApplyPatch(t *testing.T) {
	plan := WorkoutPlan{
		Name:       "Leg Day",
		Category:   CategoryStrength,
		Difficulty: DifficultyBeginner,
		IsActive:   true,
	}

	newName := "Leg Day v2"
	inactive := false
	plan.ApplyPatch(PlanPatch{
		Name:     &newName,
		Tags:     []string{" Strength ", "LEGS", ""},
		IsActive: &inactive,
	})

	assert.Equal(t, "Leg Day v2", plan.Name)
	assert.Equal(t, []string{"strength", "legs"}, plan.Tags)
	assert.False(t, plan.IsActive)
	// Untouched fields keep their values.
	assert.Equal(t, CategoryStrength, plan.Category)
	assert.Equal(t, DifficultyBeginner, plan.Difficulty)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"push", "pull"}, NormalizeTags([]string{"  Push", "PULL ", "  "}))
	assert.Empty(t, NormalizeTags(nil))
}
