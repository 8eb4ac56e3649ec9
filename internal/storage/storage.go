package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/liftvault/liftvault/internal/config"
)

// ErrNotFound is returned when an operation references a record that no
// longer exists (e.g. updating a deleted goal).
var ErrNotFound = errors.New("record not found")

// The six logical tables. Each user's copy of a table is one JSON blob
// stored under "<table>_<userId>".
const (
	tableWorkoutHistory   = "workout_history"
	tableExerciseProgress = "exercise_progress"
	tableUserStats        = "user_stats"
	tablePlannedWorkouts  = "planned_workouts"
	tableGoals            = "goals"
	tableAchievements     = "achievements"
)

var log = logrus.WithField("component", "storage")

// Storage is the local record store. Every mutation is a whole-collection
// read-modify-write cycle; mu serializes those cycles within the process so
// two goroutines cannot clobber each other's write. Cross-process races
// remain possible and accepted for a single-device client.
type Storage struct {
	mu sync.Mutex
	kv kvStore
}

func NewStorage() (*Storage, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.DB.ConnectionString == "" {
		return nil, errors.New("database connection string not configured")
	}

	db, err := sql.Open("libsql", cfg.DB.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := initializeDB(db); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Storage{kv: &sqlKV{db: db}}, nil
}

// NewMemory returns a store backed by an in-memory map. Used by tests and by
// anything that wants the store semantics without a database.
func NewMemory() *Storage {
	return &Storage{kv: newMemKV()}
}

func userKey(table, userID string) string {
	return table + "_" + userID
}

// loadCollection reads one table blob into out. A missing key leaves out at
// its zero value. A blob that fails to parse is treated as corruption and
// healed to the zero value, never surfaced.
func (s *Storage) loadCollection(key string, out any) error {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return err
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.WithField("key", key).WithError(err).Warn("dropping corrupted collection blob")
		return nil
	}
	return nil
}

func (s *Storage) saveCollection(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.kv.Set(key, string(raw))
}
