package models

import "time"

const (
	GoalTypeWeight          = "weight"
	GoalTypeReps            = "reps"
	GoalTypeVolume          = "volume"
	GoalTypeFrequency       = "frequency"
	GoalTypeMonthlyWorkouts = "monthly_workouts"
	GoalTypeConsistency     = "consistency"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusPaused    = "paused"
)

type Goal struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Target       float64   `json:"target"`
	ExerciseName string    `json:"exerciseName,omitempty"` // For weight/reps goals.
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`

	// CurrentProgress is a cache, recomputed from history on every read.
	CurrentProgress float64 `json:"currentProgress"`
}
