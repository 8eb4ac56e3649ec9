package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftvault/liftvault/internal/models"
	"github.com/liftvault/liftvault/internal/utils"
)

// June 2025: the 2nd is a Monday.
func seedWeek(t *testing.T, st *Storage, days []int, tag string) {
	t.Helper()
	for _, d := range days {
		rec := models.WorkoutRecord{
			Date:  day(d, 10),
			Title: tag,
			Type:  models.WorkoutTypeStandalone,
			Exercises: []models.ExerciseEntry{
				{Name: "Bench Press", PrimaryMuscles: []string{"chest"}},
			},
		}
		_, err := st.SaveWorkout(rec, [][]models.SetEntry{{
			{Weight: 100, Reps: 10, Completed: true},
		}}, testUser)
		require.NoError(t, err)
	}
}

func TestUserStats_StreakResetsOnGapDays(t *testing.T) {
	st := NewMemory()

	// Mon, Tue, Thu, Fri: the Wednesday gap resets the streak, so after the
	// Friday save only Thu+Fri count.
	seedWeek(t, st, []int{2, 3, 5, 6}, "Push/Pull")

	stats, err := st.GetUserStats(testUser)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalWorkouts)
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, utils.DayKey(day(6, 10)), stats.LastStreakDate)
}

func TestUserStats_SameDayWorkoutsDontInflateStreak(t *testing.T) {
	st := NewMemory()

	seedWeek(t, st, []int{2, 2, 2, 3}, "Doubles")

	stats, err := st.GetUserStats(testUser)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalWorkouts)
	assert.Equal(t, 2, stats.CurrentStreak)
}

func TestUserStats_VolumeAndTotals(t *testing.T) {
	st := NewMemory()

	rec := models.WorkoutRecord{
		Date: day(2, 10),
		Exercises: []models.ExerciseEntry{
			{Name: "Squat"},
			{Name: "Leg Press"},
		},
	}
	_, err := st.SaveWorkout(rec, [][]models.SetEntry{
		{
			{Weight: 100, Reps: 5, Completed: true},  // 500
			{Weight: 100, Reps: 5, Completed: false}, // Not counted.
		},
		{
			{Weight: 200, Reps: 10, Completed: true}, // 2000
		},
	}, testUser)
	require.NoError(t, err)

	stats, err := st.GetUserStats(testUser)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalWorkouts)
	assert.Equal(t, 2, stats.TotalExercises)
	assert.Equal(t, 2500.0, stats.TotalVolume)
}

func TestUserStats_RecomputeAfterDelete(t *testing.T) {
	st := NewMemory()

	rec1, sets1 := benchPressWorkout(day(2, 10))
	id1, err := st.SaveWorkout(rec1, sets1, testUser)
	require.NoError(t, err)
	rec2, sets2 := benchPressWorkout(day(3, 10))
	_, err = st.SaveWorkout(rec2, sets2, testUser)
	require.NoError(t, err)

	before, err := st.GetUserStats(testUser)
	require.NoError(t, err)

	require.NoError(t, st.DeleteWorkout(id1, testUser))

	after, err := st.GetUserStats(testUser)
	require.NoError(t, err)
	assert.Equal(t, before.TotalWorkouts-1, after.TotalWorkouts)
	assert.Equal(t, before.TotalVolume/2, after.TotalVolume)
}

func TestUserStats_EmptyHistory(t *testing.T) {
	st := NewMemory()

	stats, err := st.GetUserStats(testUser)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalWorkouts)
	assert.Zero(t, stats.CurrentStreak)
	assert.Empty(t, stats.LastStreakDate)
}
