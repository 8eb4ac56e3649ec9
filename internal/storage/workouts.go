package storage

import (
	"fmt"
	"sort"
	"time"

	"github.com/liftvault/liftvault/internal/models"
	"github.com/liftvault/liftvault/internal/utils"
)

func (s *Storage) loadHistory(userID string) ([]models.WorkoutRecord, error) {
	raw, ok, err := s.kv.Get(userKey(tableWorkoutHistory, userID))
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []models.WorkoutRecord{}, nil
	}
	return sanitizeHistory(decodeWorkouts([]byte(raw))), nil
}

func (s *Storage) saveHistory(userID string, records []models.WorkoutRecord) error {
	sortByDateDesc(records)
	if err := s.saveCollection(userKey(tableWorkoutHistory, userID), records); err != nil {
		return err
	}
	// The persisted stats row is a cache; refresh it with every history write
	// so remote consumers see fresh aggregates.
	stats := computeUserStats(records)
	return s.saveCollection(userKey(tableUserStats, userID), stats)
}

func sortByDateDesc(records []models.WorkoutRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}

// SaveWorkout is the single write path for new history. It zips the caller's
// per-exercise set slices into the record positionally, appends the record to
// history and, as a side effect, feeds every completed set with weight and
// reps into the progress index.
func (s *Storage) SaveWorkout(data models.WorkoutRecord, setsByExercise [][]models.SetEntry, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := data
	rec.ID = utils.NewWorkoutID()
	rec.UserID = userID
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}
	if rec.Type == "" {
		rec.Type = models.WorkoutTypeStandalone
	}
	if rec.Duration == 0 && !rec.StartTime.IsZero() && !rec.EndTime.IsZero() {
		rec.Duration = int(rec.EndTime.Sub(rec.StartTime).Minutes())
	}

	// Zip sets into exercises by position. Exercises beyond the caller's set
	// slices get an empty list; surplus set slices are ignored.
	for i := range rec.Exercises {
		if i < len(setsByExercise) && setsByExercise[i] != nil {
			rec.Exercises[i].Sets = setsByExercise[i]
		} else {
			rec.Exercises[i].Sets = []models.SetEntry{}
		}
	}

	history, err := s.loadHistory(userID)
	if err != nil {
		return "", fmt.Errorf("failed to load workout history: %w", err)
	}
	history = append(history, rec)

	if err := s.saveHistory(userID, history); err != nil {
		return "", fmt.Errorf("failed to save workout history: %w", err)
	}

	if err := s.indexWorkout(userID, rec); err != nil {
		return "", fmt.Errorf("failed to update progress index: %w", err)
	}

	log.WithFields(map[string]any{
		"workout": rec.ID,
		"user":    userID,
	}).Debug("workout saved")

	return rec.ID, nil
}

// GetWorkoutHistory returns the user's validated history, sorted by date
// descending.
func (s *Storage) GetWorkoutHistory(userID string) ([]models.WorkoutRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory(userID)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(history)
	return history, nil
}

// ReplaceWorkoutHistory persists a full new history for the user. Used by the
// sync engine after a push (to record sync flags) or a pull (merged list).
func (s *Storage) ReplaceWorkoutHistory(userID string, records []models.WorkoutRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveHistory(userID, sanitizeHistory(records))
}

// DeleteWorkout removes the record from history along with the progress
// entries it produced. Progress entries are matched by workout id; legacy
// entries without one fall back to a same-day, same-exercise match, which is
// best effort rather than exact.
func (s *Storage) DeleteWorkout(id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory(userID)
	if err != nil {
		return err
	}

	idx := -1
	for i, rec := range history {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("workout %s: %w", id, ErrNotFound)
	}

	deleted := history[idx]
	history = append(history[:idx], history[idx+1:]...)
	if err := s.saveHistory(userID, history); err != nil {
		return fmt.Errorf("failed to save workout history: %w", err)
	}

	return s.removeProgressForWorkout(userID, deleted)
}
