package storage

import (
	"github.com/liftvault/liftvault/internal/models"
)

// Catalog is the static achievement catalog. Per-user state is only the set
// of unlocked ids.
var Catalog = []models.Achievement{
	{ID: "first_workout", Title: "First Steps", Description: "Log your first workout", Type: models.AchievementTypeWorkoutCount, Requirement: 1},
	{ID: "workout_5", Title: "Getting Going", Description: "Log 5 workouts", Type: models.AchievementTypeWorkoutCount, Requirement: 5},
	{ID: "workout_10", Title: "Regular", Description: "Log 10 workouts", Type: models.AchievementTypeWorkoutCount, Requirement: 10},
	{ID: "workout_25", Title: "Committed", Description: "Log 25 workouts", Type: models.AchievementTypeWorkoutCount, Requirement: 25},
	{ID: "workout_50", Title: "Dedicated", Description: "Log 50 workouts", Type: models.AchievementTypeWorkoutCount, Requirement: 50},
	{ID: "workout_100", Title: "Centurion", Description: "Log 100 workouts", Type: models.AchievementTypeWorkoutCount, Requirement: 100},
	{ID: "streak_3", Title: "Warming Up", Description: "Train 3 days in a row", Type: models.AchievementTypeStreak, Requirement: 3},
	{ID: "streak_7", Title: "Full Week", Description: "Train 7 days in a row", Type: models.AchievementTypeStreak, Requirement: 7},
	{ID: "streak_30", Title: "Iron Month", Description: "Train 30 days in a row", Type: models.AchievementTypeStreak, Requirement: 30},
	{ID: "volume_10k", Title: "Ten Tonner", Description: "Move 10,000 kg of total volume", Type: models.AchievementTypeVolume, Requirement: 10000},
	{ID: "volume_100k", Title: "Heavy Lifter", Description: "Move 100,000 kg of total volume", Type: models.AchievementTypeVolume, Requirement: 100000},
	{ID: "goal_crusher", Title: "Goal Crusher", Description: "Complete a goal", Type: models.AchievementTypeGoalCompleted, Requirement: 1},
}

func (s *Storage) loadUnlocked(userID string) (models.UnlockedAchievements, error) {
	unlocked := models.UnlockedAchievements{}
	if err := s.loadCollection(userKey(tableAchievements, userID), &unlocked); err != nil {
		return unlocked, err
	}
	return unlocked, nil
}

// GetUnlockedAchievements returns the user's unlocked achievement ids.
func (s *Storage) GetUnlockedAchievements(userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlocked, err := s.loadUnlocked(userID)
	if err != nil {
		return nil, err
	}
	return unlocked.IDs, nil
}

// CheckAndUnlockAchievements evaluates every locked catalog entry against the
// current stats, history and goals, persists any new unlocks and returns
// them. Unlocking is idempotent and never revoked: deleting workouts
// afterwards does not remove ids from the set.
func (s *Storage) CheckAndUnlockAchievements(userID string) ([]models.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlocked, err := s.loadUnlocked(userID)
	if err != nil {
		return nil, err
	}
	have := map[string]bool{}
	for _, id := range unlocked.IDs {
		have[id] = true
	}

	history, err := s.loadHistory(userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.loadGoals(userID)
	if err != nil {
		return nil, err
	}

	stats := computeUserStats(history)
	completedGoals := 0
	for _, g := range goals {
		if g.Status == models.GoalStatusCompleted {
			completedGoals++
		}
	}

	var fresh []models.Achievement
	for _, a := range Catalog {
		if have[a.ID] {
			continue
		}
		if achievementUnlocked(a, stats, completedGoals) {
			fresh = append(fresh, a)
			unlocked.IDs = append(unlocked.IDs, a.ID)
		}
	}
	if len(fresh) == 0 {
		return nil, nil
	}

	if err := s.saveCollection(userKey(tableAchievements, userID), unlocked); err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{
		"user":     userID,
		"unlocked": len(fresh),
	}).Info("achievements unlocked")

	return fresh, nil
}

func achievementUnlocked(a models.Achievement, stats models.UserStats, completedGoals int) bool {
	switch a.Type {
	case models.AchievementTypeWorkoutCount:
		return float64(stats.TotalWorkouts) >= a.Requirement
	case models.AchievementTypeStreak:
		return float64(stats.CurrentStreak) >= a.Requirement
	case models.AchievementTypeVolume:
		return stats.TotalVolume >= a.Requirement
	case models.AchievementTypeGoalCompleted:
		return float64(completedGoals) >= a.Requirement
	}
	return false
}
