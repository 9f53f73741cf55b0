package types

type WorkoutExercise struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Muscles     string `json:"muscles" db:"muscles"` // comma joined
	Recommended string `json:"recommended" db:"recommended"`
	IsCompleted bool   `json:"is_completed" db:"is_completed"`
	CompletedAt *int64 `json:"completed_at" db:"completed_at"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
}

type WorkoutSet struct {
	ID         string `json:"id" db:"id"`
	ExerciseID string `json:"exercise_id" db:"exercise_id"`
	Weight     string `json:"weight" db:"weight"`
	Reps       string `json:"reps" db:"reps"`
	SortOrder  int64  `json:"sort_order" db:"sort_order"`
}

// ExerciseWithSets is the workout projection handed to the shell.
type ExerciseWithSets struct {
	Exercise WorkoutExercise `json:"exercise"`
	Sets     []WorkoutSet    `json:"sets"`
}
