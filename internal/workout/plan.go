package workout

import (
	"github.com/abdelrahmanemad10/GYM/internal/models"
)

// plan is the 6-day Push/Pull/Legs split, aimed at building muscle
// mass while cutting fat. Each exercise links a tutorial video.
var plan = []models.WorkoutDay{
	{
		Label: "Push 1",
		Exercises: []models.WorkoutExercise{
			{Name: "Bench Press", VideoURL: "https://www.youtube.com/watch?v=rT7DgCr-3pg"},
			{Name: "Incline Dumbbell Press", VideoURL: "https://www.youtube.com/watch?v=8iPEnn-ltC8"},
			{Name: "Overhead Shoulder Press", VideoURL: "https://www.youtube.com/watch?v=HzIiNhHhhtA"},
			{Name: "Lateral Raises", VideoURL: "https://www.youtube.com/watch?v=3VcKaXpzqRo"},
			{Name: "Dips", VideoURL: "https://www.youtube.com/watch?v=2z8JmcrW-As"},
			{Name: "Cable Triceps Pushdown", VideoURL: "https://www.youtube.com/watch?v=vB5OHsJ3EME"},
		},
	},
	{
		Label: "Pull 1",
		Exercises: []models.WorkoutExercise{
			{Name: "Deadlift", VideoURL: "https://www.youtube.com/watch?v=1ZXobu7JvvE"},
			{Name: "Pull-Ups", VideoURL: "https://www.youtube.com/watch?v=eGo4IYlbE5g"},
			{Name: "Barbell Row", VideoURL: "https://www.youtube.com/watch?v=GZbfZ033f74"},
			{Name: "Face Pulls", VideoURL: "https://www.youtube.com/watch?v=-M4-G8p8fmc"},
			{Name: "Barbell Biceps Curl", VideoURL: "https://www.youtube.com/watch?v=kwG2ipFRgfo"},
			{Name: "Hammer Curl", VideoURL: "https://www.youtube.com/watch?v=TwD-YGVP4Bk"},
		},
	},
	{
		Label: "Legs 1",
		Exercises: []models.WorkoutExercise{
			{Name: "Squat", VideoURL: "https://www.youtube.com/watch?v=YaXPRqUwItQ"},
			{Name: "Romanian Deadlift", VideoURL: "https://www.youtube.com/watch?v=2SHsk9AzdjA"},
			{Name: "Leg Press", VideoURL: "https://www.youtube.com/watch?v=IZxyjW7MPJQ"},
			{Name: "Leg Curl", VideoURL: "https://www.youtube.com/watch?v=1Tq3QdYUuHs"},
			{Name: "Standing Calf Raises", VideoURL: "https://www.youtube.com/shorts/IrrmU7_swBI"},
		},
	},
	{
		Label: "Push 2",
		Exercises: []models.WorkoutExercise{
			{Name: "Incline Barbell Press", VideoURL: "https://www.youtube.com/watch?v=lJ2o89kcnxY"},
			{Name: "Dumbbell Shoulder Press", VideoURL: "https://www.youtube.com/watch?v=B-aVuyhvLHU"},
			{Name: "Cable Flys", VideoURL: "https://www.youtube.com/watch?v=taI4XduLpTk"},
			{Name: "Lateral Raises (Drop Set)", VideoURL: "https://www.youtube.com/watch?v=3VcKaXpzqRo"},
			{Name: "Skull Crushers", VideoURL: "https://www.youtube.com/watch?v=d_KZxkY_0cM"},
			{Name: "Rope Triceps Extensions", VideoURL: "https://www.youtube.com/watch?v=2-LAMcpzODU"},
		},
	},
	{
		Label: "Pull 2",
		Exercises: []models.WorkoutExercise{
			{Name: "Rack Pulls", VideoURL: "https://www.youtube.com/watch?v=tSvkOEKT7sg"},
			{Name: "Lat Pulldown", VideoURL: "https://www.youtube.com/watch?v=CAwf7n6Luuc"},
			{Name: "Seated Cable Row", VideoURL: "https://www.youtube.com/watch?v=GZbfZ033f74"},
			{Name: "Reverse Flys", VideoURL: "https://www.youtube.com/watch?v=5YK4bgzXDp0"},
			{Name: "Concentration Curl", VideoURL: "https://www.youtube.com/watch?v=soxrZlIl35U"},
			{Name: "Preacher Curl", VideoURL: "https://www.youtube.com/watch?v=sxA__DoLsgo"},
		},
	},
	{
		Label: "Legs 2",
		Exercises: []models.WorkoutExercise{
			{Name: "Front Squat", VideoURL: "https://www.youtube.com/watch?v=1oed-UmAxFs"},
			{Name: "Bulgarian Split Squat", VideoURL: "https://www.youtube.com/watch?v=2C-uNgKwPLE"},
			{Name: "Lying Hamstring Curl", VideoURL: "https://www.youtube.com/watch?v=1Tq3QdYUuHs"},
			{Name: "Seated Calf Raises", VideoURL: "https://www.youtube.com/watch?v=YyvSfVjQeL0"},
			{Name: "Ab Wheel Rollouts", VideoURL: "https://www.youtube.com/watch?v=6GMKPQVERzw"},
		},
	},
}

// Plan returns the full training split
func Plan() []models.WorkoutDay {
	return plan
}

// Day returns one day of the split by its label
func Day(label string) (*models.WorkoutDay, bool) {
	for i := range plan {
		if plan[i].Label == label {
			return &plan[i], true
		}
	}
	return nil, false
}

// DayLabels returns the labels of all days in split order
func DayLabels() []string {
	labels := make([]string, len(plan))
	for i, d := range plan {
		labels[i] = d.Label
	}
	return labels
}
