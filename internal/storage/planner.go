package storage

import (
	"fmt"
	"sort"

	"github.com/liftvault/liftvault/internal/models"
)

// Planned workouts live in their own table keyed by ISO date, one per date
// per user. They only become history when explicitly completed and saved
// through SaveWorkout; nothing here ever touches the history table.

func (s *Storage) loadPlans(userID string) (map[string]models.PlannedWorkout, error) {
	plans := map[string]models.PlannedWorkout{}
	if err := s.loadCollection(userKey(tablePlannedWorkouts, userID), &plans); err != nil {
		return nil, err
	}
	if plans == nil {
		plans = map[string]models.PlannedWorkout{}
	}
	return plans, nil
}

// SavePlannedWorkout stores a plan under its date, overwriting any existing
// plan for that date.
func (s *Storage) SavePlannedWorkout(userID string, plan models.PlannedWorkout) error {
	if plan.Date == "" {
		return fmt.Errorf("planned workout needs a date")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plans, err := s.loadPlans(userID)
	if err != nil {
		return err
	}
	plans[plan.Date] = plan
	return s.saveCollection(userKey(tablePlannedWorkouts, userID), plans)
}

// GetPlannedWorkouts returns all plans sorted by date ascending.
func (s *Storage) GetPlannedWorkouts(userID string) ([]models.PlannedWorkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans, err := s.loadPlans(userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.PlannedWorkout, 0, len(plans))
	for _, plan := range plans {
		out = append(out, plan)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// GetPlannedWorkout returns the plan for one date, ErrNotFound when none.
func (s *Storage) GetPlannedWorkout(userID, date string) (models.PlannedWorkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans, err := s.loadPlans(userID)
	if err != nil {
		return models.PlannedWorkout{}, err
	}
	plan, ok := plans[date]
	if !ok {
		return models.PlannedWorkout{}, fmt.Errorf("plan for %s: %w", date, ErrNotFound)
	}
	return plan, nil
}

func (s *Storage) DeletePlannedWorkout(userID, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans, err := s.loadPlans(userID)
	if err != nil {
		return err
	}
	if _, ok := plans[date]; !ok {
		return fmt.Errorf("plan for %s: %w", date, ErrNotFound)
	}
	delete(plans, date)
	return s.saveCollection(userKey(tablePlannedWorkouts, userID), plans)
}
