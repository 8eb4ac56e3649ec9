package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftvault/liftvault/internal/models"
)

const testUser = "user-1"

func day(yearDay int, hour int) time.Time {
	return time.Date(2025, 6, yearDay, hour, 0, 0, 0, time.Local)
}

func benchPressWorkout(date time.Time) (models.WorkoutRecord, [][]models.SetEntry) {
	rec := models.WorkoutRecord{
		Title: "Push Day",
		Date:  date,
		Type:  models.WorkoutTypeStandalone,
		Exercises: []models.ExerciseEntry{
			{Name: "Bench Press", Equipment: "barbell", PrimaryMuscles: []string{"chest"}},
			{Name: "Overhead Press", Equipment: "barbell"},
		},
	}
	sets := [][]models.SetEntry{
		{
			{Weight: 80, Reps: 8, Completed: true},
			{Weight: 85, Reps: 5, Completed: true},
		},
		{
			{Weight: 40, Reps: 10, Completed: true},
		},
	}
	return rec, sets
}

func TestSaveWorkout_RoundTrip(t *testing.T) {
	st := NewMemory()

	rec, sets := benchPressWorkout(day(2, 10))
	id, err := st.SaveWorkout(rec, sets, testUser)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	history, err := st.GetWorkoutHistory(testUser)
	require.NoError(t, err)
	require.Len(t, history, 1)

	got := history[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, testUser, got.UserID)
	require.Len(t, got.Exercises, 2)

	// Sets land on the exercise at the same position.
	assert.Equal(t, sets[0], got.Exercises[0].Sets)
	assert.Equal(t, sets[1], got.Exercises[1].Sets)
}

func TestSaveWorkout_FewerSetSlicesThanExercises(t *testing.T) {
	st := NewMemory()

	rec, _ := benchPressWorkout(day(2, 10))
	id, err := st.SaveWorkout(rec, [][]models.SetEntry{
		{{Weight: 60, Reps: 10, Completed: true}},
	}, testUser)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	history, err := st.GetWorkoutHistory(testUser)
	require.NoError(t, err)
	require.Len(t, history[0].Exercises, 2)
	assert.Len(t, history[0].Exercises[0].Sets, 1)
	assert.Empty(t, history[0].Exercises[1].Sets)
	assert.NotNil(t, history[0].Exercises[1].Sets)
}

func TestGetWorkoutHistory_SortedByDateDescending(t *testing.T) {
	st := NewMemory()

	for _, d := range []int{3, 6, 2, 5} {
		rec, sets := benchPressWorkout(day(d, 10))
		_, err := st.SaveWorkout(rec, sets, testUser)
		require.NoError(t, err)
	}

	history, err := st.GetWorkoutHistory(testUser)
	require.NoError(t, err)
	require.Len(t, history, 4)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Date.After(history[i-1].Date), "history must be date descending")
	}
}

func TestGetWorkoutHistory_HealsMalformedBlob(t *testing.T) {
	st := NewMemory()

	// Corrupt entries between two valid ones: a record without a date, a
	// non-record element, non-list exercises, non-record sets.
	blob := `[
		{"id":"w1","date":"2025-06-02T10:00:00Z","title":"ok","exercises":[{"name":"Squat","sets":[{"weight":100,"reps":5,"completed":true}, "junk"]}]},
		{"id":"no-date","title":"dropped"},
		"not a record",
		{"id":"w2","date":"2025-06-03T10:00:00Z","title":"weird","exercises":"oops"},
		{"id":"w3","date":"2025-06-04T10:00:00Z","exercises":[{"sets":"oops"}]}
	]`
	require.NoError(t, st.kv.Set(userKey(tableWorkoutHistory, testUser), blob))

	history, err := st.GetWorkoutHistory(testUser)
	require.NoError(t, err)
	require.Len(t, history, 3)

	for _, rec := range history {
		assert.False(t, rec.Date.IsZero())
		assert.NotNil(t, rec.Exercises)
		for _, ex := range rec.Exercises {
			assert.NotEmpty(t, ex.Name)
			assert.NotNil(t, ex.Sets)
		}
	}

	// w1 keeps its well-formed set, loses the junk one.
	assert.Equal(t, "w1", history[2].ID)
	require.Len(t, history[2].Exercises, 1)
	assert.Len(t, history[2].Exercises[0].Sets, 1)

	// w2's non-list exercises coerce to empty.
	assert.Equal(t, "w2", history[1].ID)
	assert.Empty(t, history[1].Exercises)

	// w3's nameless exercise gets the placeholder.
	assert.Equal(t, "w3", history[0].ID)
	assert.Equal(t, "Unknown Exercise", history[0].Exercises[0].Name)
}

func TestGetWorkoutHistory_NonListBlobHealsToEmpty(t *testing.T) {
	st := NewMemory()
	require.NoError(t, st.kv.Set(userKey(tableWorkoutHistory, testUser), `{"oops": true}`))

	history, err := st.GetWorkoutHistory(testUser)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestDeleteWorkout_RemovesRecordAndProgress(t *testing.T) {
	st := NewMemory()

	rec1, sets1 := benchPressWorkout(day(2, 10))
	id1, err := st.SaveWorkout(rec1, sets1, testUser)
	require.NoError(t, err)
	rec2, sets2 := benchPressWorkout(day(3, 10))
	id2, err := st.SaveWorkout(rec2, sets2, testUser)
	require.NoError(t, err)

	require.NoError(t, st.DeleteWorkout(id1, testUser))

	history, err := st.GetWorkoutHistory(testUser)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, id2, history[0].ID)

	progress, err := st.GetExerciseProgress(testUser, "Bench Press")
	require.NoError(t, err)
	require.NotNil(t, progress)
	for _, entry := range progress.Entries {
		assert.Equal(t, id2, entry.WorkoutID)
	}
}

func TestDeleteWorkout_LegacyProgressFallback(t *testing.T) {
	st := NewMemory()

	rec, sets := benchPressWorkout(day(2, 10))
	id, err := st.SaveWorkout(rec, sets, testUser)
	require.NoError(t, err)

	// Strip workout ids from the indexed entries to simulate legacy data.
	progress, err := st.loadProgress(testUser)
	require.NoError(t, err)
	for key, record := range progress {
		for i := range record.Entries {
			record.Entries[i].WorkoutID = ""
		}
		progress[key] = record
	}
	require.NoError(t, st.saveCollection(userKey(tableExerciseProgress, testUser), progress))

	require.NoError(t, st.DeleteWorkout(id, testUser))

	got, err := st.GetExerciseProgress(testUser, "Bench Press")
	require.NoError(t, err)
	assert.Nil(t, got, "same-day legacy entries should be gone")
}

func TestDeleteWorkout_NotFound(t *testing.T) {
	st := NewMemory()
	err := st.DeleteWorkout("missing", testUser)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPlannedWorkouts_NeverTouchHistory(t *testing.T) {
	st := NewMemory()

	rec, sets := benchPressWorkout(day(2, 10))
	_, err := st.SaveWorkout(rec, sets, testUser)
	require.NoError(t, err)

	plan := models.PlannedWorkout{Date: "2025-06-09", Title: "Planned Push"}
	require.NoError(t, st.SavePlannedWorkout(testUser, plan))

	// Overwrite the plan for the same date, then delete it.
	plan.Title = "Planned Pull"
	require.NoError(t, st.SavePlannedWorkout(testUser, plan))
	got, err := st.GetPlannedWorkout(testUser, "2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, "Planned Pull", got.Title)

	require.NoError(t, st.DeletePlannedWorkout(testUser, "2025-06-09"))
	_, err = st.GetPlannedWorkout(testUser, "2025-06-09")
	require.ErrorIs(t, err, ErrNotFound)

	history, err := st.GetWorkoutHistory(testUser)
	require.NoError(t, err)
	assert.Len(t, history, 1, "plan churn must not touch history")
}

func TestUserNamespacesAreIsolated(t *testing.T) {
	st := NewMemory()

	rec, sets := benchPressWorkout(day(2, 10))
	_, err := st.SaveWorkout(rec, sets, testUser)
	require.NoError(t, err)

	other, err := st.GetWorkoutHistory("user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
