package models

// PlannedWorkout is a calendar entry, one per ISO date per user. It either
// references a day of a saved program or carries a standalone exercise list.
// Completing a plan creates a new WorkoutRecord; deleting or overwriting a
// plan never touches history.
type PlannedWorkout struct {
	Date       string          `json:"date"` // ISO date (YYYY-MM-DD).
	ProgramID  string          `json:"programId,omitempty"`
	ProgramDay int             `json:"programDay,omitempty"`
	Title      string          `json:"title,omitempty"`
	Exercises  []ExerciseEntry `json:"exercises,omitempty"`
}
