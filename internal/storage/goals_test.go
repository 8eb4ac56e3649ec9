package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftvault/liftvault/internal/models"
)

// Fixed evaluation time: Friday 2025-06-06, 18:00 local. The current week
// starts Monday 2025-06-02.
var goalNow = time.Date(2025, 6, 6, 18, 0, 0, 0, time.Local)

func historyOn(dates ...time.Time) []models.WorkoutRecord {
	records := make([]models.WorkoutRecord, 0, len(dates))
	for i, d := range dates {
		records = append(records, models.WorkoutRecord{
			ID:   "w" + string(rune('a'+i)),
			Date: d,
			Exercises: []models.ExerciseEntry{
				{Name: "Bench Press", Sets: []models.SetEntry{
					{Weight: 100, Reps: 5, Completed: true},
				}},
			},
		})
	}
	return records
}

func TestGoalProgress_WeightAndReps(t *testing.T) {
	progress := map[string]models.ProgressRecord{
		"bench_press": {
			Exercise: "Bench Press",
			Entries: []models.ProgressEntry{
				{Weight: 80, Reps: 10},
				{Weight: 100, Reps: 3},
				{Weight: 90, Reps: 8},
			},
		},
	}

	weight := calculateGoalProgress(models.Goal{
		Type:         models.GoalTypeWeight,
		ExerciseName: "Bench Press",
	}, nil, progress, goalNow)
	assert.Equal(t, 100.0, weight)

	reps := calculateGoalProgress(models.Goal{
		Type:         models.GoalTypeReps,
		ExerciseName: "bench press", // Fuzzy resolution applies here too.
	}, nil, progress, goalNow)
	assert.Equal(t, 10.0, reps)
}

func TestGoalProgress_VolumeTrailing30Days(t *testing.T) {
	history := historyOn(
		goalNow.AddDate(0, 0, -5),  // 500 in window.
		goalNow.AddDate(0, 0, -29), // 500 in window.
		goalNow.AddDate(0, 0, -45), // Outside.
	)

	got := calculateGoalProgress(models.Goal{Type: models.GoalTypeVolume}, history, nil, goalNow)
	assert.Equal(t, 1000.0, got)
}

func TestGoalProgress_FrequencyIgnoresLastWeek(t *testing.T) {
	// 3 workouts this week (Mon/Tue/Thu), 4 last week.
	history := historyOn(
		day(2, 10), day(3, 10), day(5, 10),
		day(2, 10).AddDate(0, 0, -7),
		day(3, 10).AddDate(0, 0, -7),
		day(4, 10).AddDate(0, 0, -7),
		day(5, 10).AddDate(0, 0, -7),
	)

	got := calculateGoalProgress(models.Goal{Type: models.GoalTypeFrequency}, history, nil, goalNow)
	assert.Equal(t, 3.0, got)
}

func TestGoalProgress_MonthlyWorkouts(t *testing.T) {
	history := historyOn(
		day(1, 10), day(3, 10), // June.
		time.Date(2025, 5, 28, 10, 0, 0, 0, time.Local), // May.
	)

	got := calculateGoalProgress(models.Goal{Type: models.GoalTypeMonthlyWorkouts}, history, nil, goalNow)
	assert.Equal(t, 2.0, got)
}

func TestGoalProgress_Consistency(t *testing.T) {
	// Current week: 3 workouts. One week back: 2 (doesn't count). Two weeks
	// back: 3. Three weeks back: none.
	var dates []time.Time
	dates = append(dates, day(2, 10), day(3, 10), day(5, 10))
	dates = append(dates, day(2, 10).AddDate(0, 0, -7), day(3, 10).AddDate(0, 0, -7))
	dates = append(dates, day(2, 10).AddDate(0, 0, -14), day(3, 10).AddDate(0, 0, -14), day(4, 10).AddDate(0, 0, -14))
	history := historyOn(dates...)

	got := calculateGoalProgress(models.Goal{Type: models.GoalTypeConsistency}, history, nil, goalNow)
	assert.Equal(t, 2.0, got)
}

func TestGoalProgress_UnknownExercise(t *testing.T) {
	got := calculateGoalProgress(models.Goal{
		Type:         models.GoalTypeWeight,
		ExerciseName: "Deadlift",
	}, nil, map[string]models.ProgressRecord{}, goalNow)
	assert.Zero(t, got)
}

func TestGoals_CRUDAndAutoComplete(t *testing.T) {
	st := NewMemory()

	rec, sets := benchPressWorkout(day(2, 10))
	_, err := st.SaveWorkout(rec, sets, testUser)
	require.NoError(t, err)

	goal, err := st.CreateGoal(testUser, models.Goal{
		Type:         models.GoalTypeWeight,
		Target:       80, // benchPressWorkout tops out at 85.
		ExerciseName: "Bench Press",
	})
	require.NoError(t, err)
	require.NotEmpty(t, goal.ID)
	assert.Equal(t, models.GoalStatusActive, goal.Status)

	goals, err := st.GetGoals(testUser)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 85.0, goals[0].CurrentProgress)
	assert.Equal(t, models.GoalStatusCompleted, goals[0].Status)

	require.NoError(t, st.UpdateGoalStatus(testUser, goal.ID, models.GoalStatusPaused))
	require.NoError(t, st.DeleteGoal(testUser, goal.ID))

	err = st.UpdateGoalStatus(testUser, goal.ID, models.GoalStatusActive)
	require.ErrorIs(t, err, ErrNotFound)
	err = st.DeleteGoal(testUser, goal.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGoalProgress_NoExerciseNameIsZero(t *testing.T) {
	progress := map[string]models.ProgressRecord{
		"bench_press": {
			Exercise: "Bench Press",
			Entries:  []models.ProgressEntry{{Weight: 180, Reps: 1}},
		},
	}

	// Without an exercise name the goal must not latch onto an arbitrary
	// record and report its max.
	got := calculateGoalProgress(models.Goal{
		Type:   models.GoalTypeWeight,
		Target: 100,
	}, nil, progress, goalNow)
	assert.Zero(t, got)
}

func TestCreateGoal_RequiresExerciseForWeightAndReps(t *testing.T) {
	st := NewMemory()

	_, err := st.CreateGoal(testUser, models.Goal{Type: models.GoalTypeWeight, Target: 100})
	require.Error(t, err)
	_, err = st.CreateGoal(testUser, models.Goal{Type: models.GoalTypeReps, Target: 10})
	require.Error(t, err)

	_, err = st.CreateGoal(testUser, models.Goal{Type: models.GoalTypeVolume, Target: 1000})
	require.NoError(t, err)
}

func TestUpdateGoalStatus_RejectsUnknownStatus(t *testing.T) {
	st := NewMemory()

	goal, err := st.CreateGoal(testUser, models.Goal{Type: models.GoalTypeVolume, Target: 1000})
	require.NoError(t, err)

	require.Error(t, st.UpdateGoalStatus(testUser, goal.ID, "archived"))

	goals, err := st.GetGoals(testUser)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, models.GoalStatusActive, goals[0].Status)
}
