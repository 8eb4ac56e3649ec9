package models

const (
	AchievementTypeWorkoutCount  = "workout_count"
	AchievementTypeStreak        = "streak"
	AchievementTypeVolume        = "volume"
	AchievementTypeGoalCompleted = "goal_completed"
)

// Achievement is a static catalog entry. The per-user state is only the set
// of unlocked ids; unlocking is monotonic and never revoked.
type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Requirement float64 `json:"requirement"`
}

// UnlockedAchievements is the persisted per-user unlock set.
type UnlockedAchievements struct {
	IDs []string `json:"ids"`
}
