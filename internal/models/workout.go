package models

// WorkoutExercise is one exercise of a workout day, with its tutorial video
type WorkoutExercise struct {
	Name     string `json:"name"`
	VideoURL string `json:"video_url"`
}

// WorkoutDay is one day of the training split
type WorkoutDay struct {
	Label     string            `json:"day"`
	Exercises []WorkoutExercise `json:"exercises"`
}
