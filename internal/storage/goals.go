package storage

import (
	"fmt"
	"time"

	"github.com/liftvault/liftvault/internal/models"
	"github.com/liftvault/liftvault/internal/utils"
)

func (s *Storage) loadGoals(userID string) ([]models.Goal, error) {
	goals := []models.Goal{}
	if err := s.loadCollection(userKey(tableGoals, userID), &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// CreateGoal stores a new goal and returns it with its assigned id.
// Weight and reps goals are meaningless without an exercise to track.
func (s *Storage) CreateGoal(userID string, goal models.Goal) (models.Goal, error) {
	if (goal.Type == models.GoalTypeWeight || goal.Type == models.GoalTypeReps) && goal.ExerciseName == "" {
		return models.Goal{}, fmt.Errorf("%s goals need an exercise name", goal.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal.ID = utils.NewGoalID()
	goal.CreatedAt = time.Now()
	if goal.Status == "" {
		goal.Status = models.GoalStatusActive
	}

	goals, err := s.loadGoals(userID)
	if err != nil {
		return models.Goal{}, err
	}
	goals = append(goals, goal)

	if err := s.saveCollection(userKey(tableGoals, userID), goals); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// GetGoals returns the user's goals with freshly recomputed progress. Active
// goals whose progress has reached the target flip to completed.
func (s *Storage) GetGoals(userID string) ([]models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.loadGoals(userID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return goals, nil
	}

	history, err := s.loadHistory(userID)
	if err != nil {
		return nil, err
	}
	progress, err := s.loadProgress(userID)
	if err != nil {
		return nil, err
	}

	for i := range goals {
		goals[i].CurrentProgress = calculateGoalProgress(goals[i], history, progress, time.Now())
		if goals[i].Status == models.GoalStatusActive &&
			goals[i].Target > 0 &&
			goals[i].CurrentProgress >= goals[i].Target {
			goals[i].Status = models.GoalStatusCompleted
		}
	}

	if err := s.saveCollection(userKey(tableGoals, userID), goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// UpdateGoalStatus sets the status of a goal, ErrNotFound if it is gone.
func (s *Storage) UpdateGoalStatus(userID, goalID, status string) error {
	switch status {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusPaused:
	default:
		return fmt.Errorf("invalid goal status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.loadGoals(userID)
	if err != nil {
		return err
	}

	for i := range goals {
		if goals[i].ID == goalID {
			goals[i].Status = status
			return s.saveCollection(userKey(tableGoals, userID), goals)
		}
	}
	return fmt.Errorf("goal %s: %w", goalID, ErrNotFound)
}

func (s *Storage) DeleteGoal(userID, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.loadGoals(userID)
	if err != nil {
		return err
	}

	for i := range goals {
		if goals[i].ID == goalID {
			goals = append(goals[:i], goals[i+1:]...)
			return s.saveCollection(userKey(tableGoals, userID), goals)
		}
	}
	return fmt.Errorf("goal %s: %w", goalID, ErrNotFound)
}

// CalculateGoalProgress recomputes a goal's progress from scratch.
func (s *Storage) CalculateGoalProgress(userID string, goal models.Goal) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory(userID)
	if err != nil {
		return 0, err
	}
	progress, err := s.loadProgress(userID)
	if err != nil {
		return 0, err
	}
	return calculateGoalProgress(goal, history, progress, time.Now()), nil
}

// calculateGoalProgress is pure: everything it needs comes in as arguments,
// including the evaluation time.
func calculateGoalProgress(
	goal models.Goal,
	history []models.WorkoutRecord,
	progress map[string]models.ProgressRecord,
	now time.Time,
) float64 {
	switch goal.Type {
	case models.GoalTypeWeight:
		return maxProgressValue(progress, goal.ExerciseName, func(e models.ProgressEntry) float64 {
			return e.Weight
		})

	case models.GoalTypeReps:
		return maxProgressValue(progress, goal.ExerciseName, func(e models.ProgressEntry) float64 {
			return float64(e.Reps)
		})

	case models.GoalTypeVolume:
		cutoff := now.AddDate(0, 0, -30)
		var volume float64
		for _, rec := range history {
			if rec.Date.Before(cutoff) {
				continue
			}
			for _, ex := range rec.Exercises {
				for _, set := range ex.Sets {
					volume += set.Volume()
				}
			}
		}
		return volume

	case models.GoalTypeFrequency:
		return float64(workoutsSince(history, utils.StartOfWeek(now)))

	case models.GoalTypeMonthlyWorkouts:
		return float64(workoutsSince(history, utils.StartOfMonth(now)))

	case models.GoalTypeConsistency:
		// Current week plus the three before it; a week counts when it holds
		// at least 3 workouts.
		qualifying := 0
		for week := 0; week < 4; week++ {
			start := utils.StartOfWeek(now).AddDate(0, 0, -7*week)
			end := start.AddDate(0, 0, 7)
			count := 0
			for _, rec := range history {
				if !rec.Date.Before(start) && rec.Date.Before(end) {
					count++
				}
			}
			if count >= 3 {
				qualifying++
			}
		}
		return float64(qualifying)
	}

	return 0
}

func maxProgressValue(
	progress map[string]models.ProgressRecord,
	exerciseName string,
	value func(models.ProgressEntry) float64,
) float64 {
	key, ok := resolveProgressKey(progress, exerciseName)
	if !ok {
		return 0
	}
	var max float64
	for _, entry := range progress[key].Entries {
		if v := value(entry); v > max {
			max = v
		}
	}
	return max
}
