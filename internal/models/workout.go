package models

import "time"

const (
	WorkoutTypeProgram    = "program"
	WorkoutTypeStandalone = "standalone"
	WorkoutTypeQuick      = "quick"
)

const (
	SetTypeNormal   = "normal"
	SetTypeWarmup   = "warmup"
	SetTypeDropset  = "dropset"
	SetTypeFailure  = "failure"
	SetTypeSuperset = "superset"
)

// WorkoutRecord is the canonical record of a completed workout. Once saved it
// is immutable except for its notes/photos and its own deletion.
type WorkoutRecord struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Date      time.Time       `json:"date"`
	StartTime time.Time       `json:"startTime,omitempty"`
	EndTime   time.Time       `json:"endTime,omitempty"`
	Duration  int             `json:"duration,omitempty"` // Minutes.
	Title     string          `json:"title"`
	Type      string          `json:"type"`
	Notes     string          `json:"notes,omitempty"`
	Photos    []string        `json:"photos,omitempty"`
	Exercises []ExerciseEntry `json:"exercises"`

	// Cloud sync bookkeeping.
	Synced   bool      `json:"synced,omitempty"`
	SyncedAt time.Time `json:"syncedAt,omitempty"`
	CloudID  string    `json:"cloudId,omitempty"`
}

type ExerciseEntry struct {
	Name             string     `json:"name"`
	Equipment        string     `json:"equipment,omitempty"`
	PrimaryMuscles   []string   `json:"primaryMuscles,omitempty"`
	SecondaryMuscles []string   `json:"secondaryMuscles,omitempty"`
	Sets             []SetEntry `json:"sets"`
}

type SetEntry struct {
	Weight    float64 `json:"weight"`         // May be zero for bodyweight work.
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
	RPE       float64 `json:"rpe,omitempty"` // 1-10.
	Type      string  `json:"type,omitempty"`
	Note      string  `json:"note,omitempty"`
}

// Volume returns weight x reps for a completed set, 0 otherwise.
func (s SetEntry) Volume() float64 {
	if !s.Completed {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

//
// For TOML parsing only
//

type WorkoutTOML struct {
	Title     string             `toml:"title"`
	Date      time.Time          `toml:"date"`
	StartTime time.Time          `toml:"start_time"`
	EndTime   time.Time          `toml:"end_time"`
	Type      string             `toml:"type"`
	Notes     string             `toml:"notes"`
	Exercises []ExerciseDefTOML  `toml:"exercise"`
}

type ExerciseDefTOML struct {
	Name             string    `toml:"name"`
	Equipment        string    `toml:"equipment"`
	PrimaryMuscles   []string  `toml:"primary_muscles"`
	SecondaryMuscles []string  `toml:"secondary_muscles"`
	Sets             []SetTOML `toml:"set"`
}

type SetTOML struct {
	Weight    float64 `toml:"weight"`
	Reps      int     `toml:"reps"`
	Completed bool    `toml:"completed"`
	RPE       float64 `toml:"rpe,omitempty"`
	Type      string  `toml:"type,omitempty"`
	Note      string  `toml:"note,omitempty"`
}
