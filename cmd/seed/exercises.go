package main

import "fittrack/workout-app/internal/domain"

// builtinExercises is the starter catalog loaded by the seeder. Entries
// span the main categories so new users can build plans immediately.
var builtinExercises = []domain.Exercise{
	{
		Name:         "Push-ups",
		Category:     "chest",
		MuscleGroups: []string{"chest", "triceps", "shoulders"},
		Equipment:    "bodyweight",
		Difficulty:   "beginner",
		Instructions: []string{
			"Start in a plank position with hands slightly wider than shoulders",
			"Lower your body until your chest nearly touches the floor",
			"Push back up to the starting position",
		},
		Tips:              []string{"Keep your core tight throughout the movement", "Maintain a straight line from head to heels"},
		Variations:        []string{"Incline push-ups", "Diamond push-ups", "Decline push-ups"},
		EstimatedDuration: 45,
		CaloriesPerMinute: 7,
	},
	{
		Name:         "Bench Press",
		Category:     "chest",
		MuscleGroups: []string{"chest", "triceps", "shoulders"},
		Equipment:    "barbell",
		Difficulty:   "intermediate",
		Instructions: []string{
			"Lie on the bench with feet flat on the floor",
			"Grip the bar slightly wider than shoulder width",
			"Lower the bar to your mid-chest, then press it back up",
		},
		Tips:              []string{"Keep your shoulder blades retracted", "Do not bounce the bar off your chest"},
		Cautions:          []string{"Use a spotter when lifting heavy"},
		Variations:        []string{"Incline bench press", "Dumbbell bench press", "Close-grip bench press"},
		EstimatedDuration: 60,
		CaloriesPerMinute: 6,
	},
	{
		Name:         "Squats",
		Category:     "legs",
		MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"},
		Equipment:    "bodyweight",
		Difficulty:   "beginner",
		Instructions: []string{
			"Stand with feet shoulder-width apart",
			"Lower your hips back and down as if sitting in a chair",
			"Drive through your heels to return to standing",
		},
		Tips:              []string{"Keep your chest up and knees tracking over your toes"},
		Variations:        []string{"Goblet squats", "Barbell back squats", "Jump squats"},
		EstimatedDuration: 45,
		CaloriesPerMinute: 8,
	},
	{
		Name:         "Deadlifts",
		Category:     "back",
		MuscleGroups: []string{"hamstrings", "glutes", "lower back", "traps"},
		Equipment:    "barbell",
		Difficulty:   "advanced",
		Instructions: []string{
			"Stand with the bar over your mid-foot",
			"Hinge at the hips and grip the bar just outside your legs",
			"Drive through the floor and stand up tall, keeping the bar close",
		},
		Tips:              []string{"Keep a neutral spine from setup to lockout"},
		Cautions:          []string{"Start light and master the hip hinge before adding weight"},
		Variations:        []string{"Romanian deadlifts", "Sumo deadlifts", "Trap bar deadlifts"},
		EstimatedDuration: 75,
		CaloriesPerMinute: 9,
	},
	{
		Name:         "Pull-ups",
		Category:     "back",
		MuscleGroups: []string{"lats", "biceps", "upper back"},
		Equipment:    "pull-up bar",
		Difficulty:   "intermediate",
		Instructions: []string{
			"Hang from the bar with an overhand grip",
			"Pull your chin over the bar by driving your elbows down",
			"Lower yourself under control to a full hang",
		},
		Tips:              []string{"Avoid swinging or kipping"},
		Variations:        []string{"Chin-ups", "Assisted pull-ups", "Wide-grip pull-ups"},
		EstimatedDuration: 50,
		CaloriesPerMinute: 8,
	},
	{
		Name:         "Overhead Press",
		Category:     "shoulders",
		MuscleGroups: []string{"shoulders", "triceps", "upper chest"},
		Equipment:    "barbell",
		Difficulty:   "intermediate",
		Instructions: []string{
			"Hold the bar at shoulder height with forearms vertical",
			"Press the bar overhead until your arms lock out",
			"Lower the bar back to your shoulders under control",
		},
		Tips:              []string{"Squeeze your glutes to avoid arching your lower back"},
		Variations:        []string{"Dumbbell shoulder press", "Seated press", "Push press"},
		EstimatedDuration: 60,
		CaloriesPerMinute: 6,
	},
	{
		Name:         "Plank",
		Category:     "core",
		MuscleGroups: []string{"abs", "obliques", "lower back"},
		Equipment:    "bodyweight",
		Difficulty:   "beginner",
		Instructions: []string{
			"Rest on your forearms with elbows under your shoulders",
			"Hold your body in a straight line from head to heels",
			"Breathe steadily and hold for the target time",
		},
		Tips:              []string{"Do not let your hips sag or pike"},
		Variations:        []string{"Side plank", "Plank with shoulder taps"},
		EstimatedDuration: 60,
		CaloriesPerMinute: 4,
	},
	{
		Name:         "Lunges",
		Category:     "legs",
		MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"},
		Equipment:    "bodyweight",
		Difficulty:   "beginner",
		Instructions: []string{
			"Step forward with one leg and lower your back knee toward the floor",
			"Keep your front knee over your ankle",
			"Push off the front foot to return to standing",
		},
		Variations:        []string{"Walking lunges", "Reverse lunges", "Bulgarian split squats"},
		EstimatedDuration: 50,
		CaloriesPerMinute: 7,
	},
	{
		Name:         "Running",
		Category:     "cardio",
		MuscleGroups: []string{"legs", "core"},
		Equipment:    "none",
		Difficulty:   "beginner",
		Instructions: []string{
			"Warm up with a brisk walk or light jog",
			"Run at a steady conversational pace",
			"Cool down with a few minutes of walking",
		},
		Tips:              []string{"Land mid-foot and keep your cadence high"},
		Variations:        []string{"Interval sprints", "Hill runs", "Treadmill running"},
		EstimatedDuration: 600,
		CaloriesPerMinute: 11,
	},
	{
		Name:         "Jumping Jacks",
		Category:     "cardio",
		MuscleGroups: []string{"full body"},
		Equipment:    "bodyweight",
		Difficulty:   "beginner",
		Instructions: []string{
			"Stand upright with arms at your sides",
			"Jump while spreading your legs and raising your arms overhead",
			"Jump back to the starting position and repeat",
		},
		EstimatedDuration: 30,
		CaloriesPerMinute: 9,
	},
	{
		Name:         "Bicep Curls",
		Category:     "arms",
		MuscleGroups: []string{"biceps", "forearms"},
		Equipment:    "dumbbells",
		Difficulty:   "beginner",
		Instructions: []string{
			"Hold a dumbbell in each hand with palms facing forward",
			"Curl the weights toward your shoulders without swinging",
			"Lower the weights under control",
		},
		Tips:              []string{"Keep your elbows pinned to your sides"},
		Variations:        []string{"Hammer curls", "Barbell curls", "Concentration curls"},
		EstimatedDuration: 40,
		CaloriesPerMinute: 5,
	},
	{
		Name:         "Hamstring Stretch",
		Category:     "flexibility",
		MuscleGroups: []string{"hamstrings", "lower back"},
		Equipment:    "none",
		Difficulty:   "beginner",
		Instructions: []string{
			"Sit with one leg extended and the other foot against your inner thigh",
			"Hinge forward from the hips toward the extended foot",
			"Hold the stretch without bouncing",
		},
		Cautions:          []string{"Stretch to mild tension, never pain"},
		EstimatedDuration: 30,
		CaloriesPerMinute: 2,
	},
}
