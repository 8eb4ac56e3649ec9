package storage

import (
	"time"

	"github.com/liftvault/liftvault/internal/models"
	"github.com/liftvault/liftvault/internal/utils"
)

// computeUserStats derives the full aggregate from history. Aggregates are
// never maintained incrementally: recomputing on every read keeps the cache
// from drifting after deletions or merges.
func computeUserStats(history []models.WorkoutRecord) models.UserStats {
	stats := models.UserStats{}

	days := map[string]bool{}
	for _, rec := range history {
		stats.TotalWorkouts++
		stats.TotalExercises += len(rec.Exercises)
		for _, ex := range rec.Exercises {
			for _, set := range ex.Sets {
				stats.TotalVolume += set.Volume()
			}
		}
		if rec.Date.After(stats.LastWorkoutDate) {
			stats.LastWorkoutDate = rec.Date
		}
		days[utils.DayKey(rec.Date)] = true
	}

	if len(days) == 0 {
		return stats
	}

	stats.LastStreakDate = utils.DayKey(stats.LastWorkoutDate)
	stats.CurrentStreak = streakEndingAt(days, stats.LastWorkoutDate)
	return stats
}

// streakEndingAt counts consecutive calendar days with at least one workout,
// walking backwards from the most recent workout day. Equivalent to the
// incremental same-day/next-day/reset rule applied save by save.
func streakEndingAt(days map[string]bool, last time.Time) int {
	streak := 0
	day := utils.StartOfDay(last)
	for days[utils.DayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// GetUserStats recomputes the aggregate from validated history and refreshes
// the persisted cache.
func (s *Storage) GetUserStats(userID string) (models.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory(userID)
	if err != nil {
		return models.UserStats{}, err
	}

	stats := computeUserStats(history)
	if err := s.saveCollection(userKey(tableUserStats, userID), stats); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}

// workoutsSince counts workouts dated on or after the cutoff.
func workoutsSince(history []models.WorkoutRecord, cutoff time.Time) int {
	count := 0
	for _, rec := range history {
		if !rec.Date.Before(cutoff) {
			count++
		}
	}
	return count
}
