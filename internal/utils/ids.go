package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewWorkoutID returns a time-ordered, collision-resistant workout id.
// The millisecond prefix keeps ids sortable by creation time, the uuid
// fragment makes rapid successive calls safe.
func NewWorkoutID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}

// NewGoalID returns a fresh goal id.
func NewGoalID() string {
	return uuid.New().String()
}
