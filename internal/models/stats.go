package models

import "time"

// UserStats is the per-user aggregate over the whole workout history. It is
// persisted as a display/sync cache but always recomputed from history on
// read, so it can never drift from the records it summarizes.
type UserStats struct {
	TotalWorkouts   int       `json:"totalWorkouts"`
	TotalExercises  int       `json:"totalExercises"`
	CurrentStreak   int       `json:"currentStreak"`
	LastStreakDate  string    `json:"lastStreakDate,omitempty"` // ISO date (YYYY-MM-DD).
	TotalVolume     float64   `json:"totalVolume"`
	LastWorkoutDate time.Time `json:"lastWorkoutDate,omitempty"`
}
