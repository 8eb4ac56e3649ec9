package storage

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/liftvault/liftvault/internal/models"
	"github.com/liftvault/liftvault/internal/utils"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Equipment qualifiers stripped during the second fuzzy pass, so that
// "Leg Extension" can resolve to a record stored under
// "machine_leg_extension_(machine)".
var equipmentPrefixes = []string{
	"machine_",
	"barbell_",
	"dumbbell_",
	"cable_",
	"bodyweight_",
	"kettlebell_",
	"ez_bar_",
	"smith_machine_",
}

// NormalizeExerciseKey lowercases the name and collapses whitespace runs into
// single underscores. This is the index key for progress records.
func NormalizeExerciseKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return whitespaceRuns.ReplaceAllString(key, "_")
}

// stripQualifiers removes a trailing parenthetical and any known equipment
// prefix from an already-normalized key.
func stripQualifiers(key string) string {
	if i := strings.Index(key, "("); i >= 0 {
		key = strings.TrimRight(key[:i], "_")
	}
	for changed := true; changed; {
		changed = false
		for _, prefix := range equipmentPrefixes {
			if strings.HasPrefix(key, prefix) {
				key = strings.TrimPrefix(key, prefix)
				changed = true
			}
		}
	}
	return key
}

// resolveProgressKey finds the index key for an exercise name: exact match
// first, then substring containment either direction, then a second pass with
// parentheticals and equipment prefixes stripped from both keys. Candidates
// are scanned in sorted key order so ties resolve deterministically.
func resolveProgressKey(progress map[string]models.ProgressRecord, name string) (string, bool) {
	key := NormalizeExerciseKey(name)
	if key == "" {
		// An empty key is contained in every key; without this guard the
		// substring pass would return an arbitrary record.
		return "", false
	}
	if _, ok := progress[key]; ok {
		return key, true
	}

	keys := make([]string, 0, len(progress))
	for k := range progress {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.Contains(k, key) || strings.Contains(key, k) {
			return k, true
		}
	}

	stripped := stripQualifiers(key)
	if stripped == "" {
		return "", false
	}
	for _, k := range keys {
		ks := stripQualifiers(k)
		if ks == "" {
			continue
		}
		if strings.Contains(ks, stripped) || strings.Contains(stripped, ks) {
			return k, true
		}
	}

	return "", false
}

func (s *Storage) loadProgress(userID string) (map[string]models.ProgressRecord, error) {
	progress := map[string]models.ProgressRecord{}
	if err := s.loadCollection(userKey(tableExerciseProgress, userID), &progress); err != nil {
		return nil, err
	}
	if progress == nil {
		progress = map[string]models.ProgressRecord{}
	}
	return progress, nil
}

// indexWorkout appends one progress entry per completed set with weight and
// reps. Records are created lazily under the exact normalized key; fuzzy
// matching applies to lookups only.
func (s *Storage) indexWorkout(userID string, rec models.WorkoutRecord) error {
	progress, err := s.loadProgress(userID)
	if err != nil {
		return err
	}

	changed := false
	for _, ex := range rec.Exercises {
		key := NormalizeExerciseKey(ex.Name)
		for setIdx, set := range ex.Sets {
			if !set.Completed || set.Weight <= 0 || set.Reps <= 0 {
				continue
			}
			record, ok := progress[key]
			if !ok {
				record = models.ProgressRecord{Exercise: ex.Name}
			}
			record.Entries = append(record.Entries, models.ProgressEntry{
				Date:      rec.Date,
				Weight:    set.Weight,
				Reps:      set.Reps,
				Volume:    set.Weight * float64(set.Reps),
				WorkoutID: rec.ID,
				SetIndex:  setIdx,
				Note:      set.Note,
			})
			progress[key] = record
			changed = true
		}
	}
	if !changed {
		return nil
	}

	for key, record := range progress {
		sort.SliceStable(record.Entries, func(i, j int) bool {
			return record.Entries[i].Date.Before(record.Entries[j].Date)
		})
		progress[key] = record
	}

	return s.saveCollection(userKey(tableExerciseProgress, userID), progress)
}

// removeProgressForWorkout drops entries produced by a deleted workout.
// Entries carrying the workout id match exactly; legacy entries without one
// match by calendar day and exercise key.
func (s *Storage) removeProgressForWorkout(userID string, deleted models.WorkoutRecord) error {
	progress, err := s.loadProgress(userID)
	if err != nil {
		return err
	}

	deletedKeys := map[string]bool{}
	for _, ex := range deleted.Exercises {
		deletedKeys[NormalizeExerciseKey(ex.Name)] = true
	}

	changed := false
	for key, record := range progress {
		kept := record.Entries[:0]
		for _, entry := range record.Entries {
			drop := entry.WorkoutID == deleted.ID ||
				(entry.WorkoutID == "" && deletedKeys[key] && utils.SameDay(entry.Date, deleted.Date))
			if drop {
				changed = true
				continue
			}
			kept = append(kept, entry)
		}
		if len(kept) == 0 {
			delete(progress, key)
			continue
		}
		record.Entries = kept
		progress[key] = record
	}
	if !changed {
		return nil
	}

	return s.saveCollection(userKey(tableExerciseProgress, userID), progress)
}

// GetExerciseProgress returns the progress record for an exercise name using
// fuzzy key resolution. Returns nil when no record matches.
func (s *Storage) GetExerciseProgress(userID, name string) (*models.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress, err := s.loadProgress(userID)
	if err != nil {
		return nil, err
	}

	key, ok := resolveProgressKey(progress, name)
	if !ok {
		return nil, nil
	}
	record := progress[key]
	return &record, nil
}

// GetLastExerciseSets reconstructs the per-set weights and reps of the most
// recent workout for an exercise. Entries sharing a workout id form one
// workout; legacy entries without one are grouped by a 60 second timestamp
// window. Sets come back ordered by their recorded set index; gaps left by
// incomplete sets collapse, and a duplicate index keeps the later entry.
func (s *Storage) GetLastExerciseSets(userID, name string) ([]models.SetEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress, err := s.loadProgress(userID)
	if err != nil {
		return nil, err
	}

	key, ok := resolveProgressKey(progress, name)
	if !ok {
		return nil, nil
	}

	groups := groupEntriesByWorkout(progress[key].Entries)
	if len(groups) == 0 {
		return nil, nil
	}

	// Most recent group wins.
	last := groups[0]
	for _, g := range groups[1:] {
		if groupDate(g).After(groupDate(last)) {
			last = g
		}
	}

	// Index into a map first: a hand-edited blob can carry an arbitrary set
	// index, which must never drive an allocation.
	byIndex := map[int]models.SetEntry{}
	for _, entry := range last {
		if entry.SetIndex < 0 {
			continue
		}
		byIndex[entry.SetIndex] = models.SetEntry{
			Weight:    entry.Weight,
			Reps:      entry.Reps,
			Completed: true,
			Note:      entry.Note,
		}
	}

	indexes := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	sets := make([]models.SetEntry, 0, len(indexes))
	for _, idx := range indexes {
		sets = append(sets, byIndex[idx])
	}
	return sets, nil
}

func groupEntriesByWorkout(entries []models.ProgressEntry) [][]models.ProgressEntry {
	var groups [][]models.ProgressEntry
	byWorkout := map[string]int{}
	lastLegacy := -1
	var lastLegacyTime time.Time

	for _, entry := range entries {
		if entry.WorkoutID != "" {
			if i, ok := byWorkout[entry.WorkoutID]; ok {
				groups[i] = append(groups[i], entry)
			} else {
				groups = append(groups, []models.ProgressEntry{entry})
				byWorkout[entry.WorkoutID] = len(groups) - 1
			}
			continue
		}
		if lastLegacy >= 0 && entry.Date.Sub(lastLegacyTime) <= 60*time.Second {
			groups[lastLegacy] = append(groups[lastLegacy], entry)
		} else {
			groups = append(groups, []models.ProgressEntry{entry})
			lastLegacy = len(groups) - 1
		}
		lastLegacyTime = entry.Date
	}
	return groups
}

func groupDate(group []models.ProgressEntry) time.Time {
	var latest time.Time
	for _, entry := range group {
		if entry.Date.After(latest) {
			latest = entry.Date
		}
	}
	return latest
}
