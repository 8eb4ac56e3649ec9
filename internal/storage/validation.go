package storage

import (
	"encoding/json"
	"time"

	"github.com/liftvault/liftvault/internal/models"
)

// The history blob can contain malformed entries, introduced either by bad
// remote data or by a partial write. Every read path decodes leniently and
// sanitizes, so downstream consumers never see a record without a date, an
// exercise without a name, or a sets field that is not a list.

// looseWorkout tolerates a malformed exercises collection inside an otherwise
// well-formed record.
type looseWorkout struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Date      time.Time       `json:"date"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	Duration  int             `json:"duration"`
	Title     string          `json:"title"`
	Type      string          `json:"type"`
	Notes     string          `json:"notes"`
	Photos    []string        `json:"photos"`
	Exercises json.RawMessage `json:"exercises"`
	Synced    bool            `json:"synced"`
	SyncedAt  time.Time       `json:"syncedAt"`
	CloudID   string          `json:"cloudId"`
}

type looseExercise struct {
	Name             string          `json:"name"`
	Equipment        string          `json:"equipment"`
	PrimaryMuscles   []string        `json:"primaryMuscles"`
	SecondaryMuscles []string        `json:"secondaryMuscles"`
	Sets             json.RawMessage `json:"sets"`
}

// decodeWorkouts turns a raw history blob into clean records, dropping
// whatever cannot be salvaged.
func decodeWorkouts(raw []byte) []models.WorkoutRecord {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		log.WithError(err).Warn("workout history blob is not a list, dropping it")
		return nil
	}

	records := make([]models.WorkoutRecord, 0, len(items))
	for _, item := range items {
		rec, ok := decodeWorkout(item)
		if !ok {
			log.Warn("dropping malformed workout record")
			continue
		}
		records = append(records, rec)
	}
	return records
}

func decodeWorkout(item json.RawMessage) (models.WorkoutRecord, bool) {
	var loose looseWorkout
	if err := json.Unmarshal(item, &loose); err != nil {
		return models.WorkoutRecord{}, false // Not record-shaped.
	}
	if loose.Date.IsZero() {
		return models.WorkoutRecord{}, false // A record without a date is unusable.
	}

	rec := models.WorkoutRecord{
		ID:        loose.ID,
		UserID:    loose.UserID,
		Date:      loose.Date,
		StartTime: loose.StartTime,
		EndTime:   loose.EndTime,
		Duration:  loose.Duration,
		Title:     loose.Title,
		Type:      loose.Type,
		Notes:     loose.Notes,
		Photos:    loose.Photos,
		Exercises: decodeExercises(loose.Exercises),
		Synced:    loose.Synced,
		SyncedAt:  loose.SyncedAt,
		CloudID:   loose.CloudID,
	}
	return rec, true
}

func decodeExercises(raw json.RawMessage) []models.ExerciseEntry {
	exercises := []models.ExerciseEntry{}
	if len(raw) == 0 {
		return exercises
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return exercises // Non-list exercises coerce to empty.
	}

	for _, item := range items {
		var loose looseExercise
		if err := json.Unmarshal(item, &loose); err != nil {
			continue
		}
		ex := models.ExerciseEntry{
			Name:             loose.Name,
			Equipment:        loose.Equipment,
			PrimaryMuscles:   loose.PrimaryMuscles,
			SecondaryMuscles: loose.SecondaryMuscles,
			Sets:             decodeSets(loose.Sets),
		}
		exercises = append(exercises, ex)
	}
	return exercises
}

func decodeSets(raw json.RawMessage) []models.SetEntry {
	sets := []models.SetEntry{}
	if len(raw) == 0 {
		return sets
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return sets
	}

	for _, item := range items {
		var set models.SetEntry
		if err := json.Unmarshal(item, &set); err != nil {
			continue // Drop non-record-shaped sets.
		}
		sets = append(sets, set)
	}
	return sets
}

// sanitizeHistory guards every read of typed records: records without a date
// are dropped, nil collections become empty ones and nameless exercises get
// a placeholder.
func sanitizeHistory(records []models.WorkoutRecord) []models.WorkoutRecord {
	out := make([]models.WorkoutRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date.IsZero() {
			continue
		}
		if rec.Exercises == nil {
			rec.Exercises = []models.ExerciseEntry{}
		}
		for i := range rec.Exercises {
			if rec.Exercises[i].Name == "" {
				rec.Exercises[i].Name = "Unknown Exercise"
			}
			if rec.Exercises[i].Sets == nil {
				rec.Exercises[i].Sets = []models.SetEntry{}
			}
		}
		out = append(out, rec)
	}
	return out
}
