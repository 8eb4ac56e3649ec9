package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/liftvault/liftvault/internal/models"
)

// ParseWorkoutFromTOML reads a workout log file from disk.
func ParseWorkoutFromTOML(path string) (*models.WorkoutTOML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var workout models.WorkoutTOML
	if err := toml.Unmarshal(data, &workout); err != nil {
		return nil, err
	}

	return &workout, nil
}

// WorkoutFromTOML converts a parsed TOML file into the record plus the
// positional per-exercise set slices that SaveWorkout zips together.
func WorkoutFromTOML(w *models.WorkoutTOML) (models.WorkoutRecord, [][]models.SetEntry) {
	rec := models.WorkoutRecord{
		Title:     w.Title,
		Date:      w.Date,
		StartTime: w.StartTime,
		EndTime:   w.EndTime,
		Type:      w.Type,
		Notes:     w.Notes,
	}

	var setsByExercise [][]models.SetEntry
	for _, ex := range w.Exercises {
		rec.Exercises = append(rec.Exercises, models.ExerciseEntry{
			Name:             ex.Name,
			Equipment:        ex.Equipment,
			PrimaryMuscles:   ex.PrimaryMuscles,
			SecondaryMuscles: ex.SecondaryMuscles,
		})

		sets := make([]models.SetEntry, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			sets = append(sets, models.SetEntry{
				Weight:    set.Weight,
				Reps:      set.Reps,
				Completed: set.Completed,
				RPE:       set.RPE,
				Type:      set.Type,
				Note:      set.Note,
			})
		}
		setsByExercise = append(setsByExercise, sets)
	}

	return rec, setsByExercise
}
