package models

import "time"

// ProgressRecord is the append-only time series kept per normalized exercise
// key. Entries are sorted by date ascending.
type ProgressRecord struct {
	Exercise string          `json:"exercise"` // Display name as first logged.
	Entries  []ProgressEntry `json:"entries"`
}

// ProgressEntry is one completed set taken from a saved workout.
type ProgressEntry struct {
	Date      time.Time `json:"date"`
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	Volume    float64   `json:"volume"` // weight x reps.
	WorkoutID string    `json:"workoutId,omitempty"`
	SetIndex  int       `json:"setIndex"`
	Note      string    `json:"note,omitempty"`
}
