package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftvault/liftvault/internal/models"
)

func unlockedIDs(t *testing.T, st *Storage) map[string]bool {
	t.Helper()
	ids, err := st.GetUnlockedAchievements(testUser)
	require.NoError(t, err)
	set := map[string]bool{}
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func TestAchievements_UnlockOnWorkoutCount(t *testing.T) {
	st := NewMemory()

	seedWeek(t, st, []int{2, 3, 4, 5, 6}, "Volume Week")

	fresh, err := st.CheckAndUnlockAchievements(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, fresh)

	have := unlockedIDs(t, st)
	assert.True(t, have["first_workout"])
	assert.True(t, have["workout_5"])
	assert.False(t, have["workout_10"])
	assert.True(t, have["streak_3"], "5 consecutive days")
	assert.False(t, have["volume_10k"], "5 workouts x 1000 kg is only 5000")
}

func TestAchievements_MonotonicAcrossDeletes(t *testing.T) {
	st := NewMemory()

	seedWeek(t, st, []int{2, 3, 4, 5, 6}, "Push")
	_, err := st.CheckAndUnlockAchievements(testUser)
	require.NoError(t, err)
	require.True(t, unlockedIDs(t, st)["workout_5"])

	// Delete everything; the unlock set must not shrink.
	history, err := st.GetWorkoutHistory(testUser)
	require.NoError(t, err)
	for _, rec := range history {
		require.NoError(t, st.DeleteWorkout(rec.ID, testUser))
	}

	again, err := st.CheckAndUnlockAchievements(testUser)
	require.NoError(t, err)
	assert.Empty(t, again, "nothing new to unlock")
	assert.True(t, unlockedIDs(t, st)["workout_5"], "unlocks are never revoked")
}

func TestAchievements_Idempotent(t *testing.T) {
	st := NewMemory()

	seedWeek(t, st, []int{2}, "Once")

	first, err := st.CheckAndUnlockAchievements(testUser)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "first_workout", first[0].ID)

	second, err := st.CheckAndUnlockAchievements(testUser)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestAchievements_GoalCompleted(t *testing.T) {
	st := NewMemory()

	rec, sets := benchPressWorkout(day(2, 10))
	_, err := st.SaveWorkout(rec, sets, testUser)
	require.NoError(t, err)

	_, err = st.CreateGoal(testUser, models.Goal{
		Type:         models.GoalTypeWeight,
		Target:       50,
		ExerciseName: "Bench Press",
	})
	require.NoError(t, err)

	// GetGoals recomputes progress and flips the goal to completed.
	goals, err := st.GetGoals(testUser)
	require.NoError(t, err)
	require.Equal(t, models.GoalStatusCompleted, goals[0].Status)

	_, err = st.CheckAndUnlockAchievements(testUser)
	require.NoError(t, err)
	assert.True(t, unlockedIDs(t, st)["goal_crusher"])
}
