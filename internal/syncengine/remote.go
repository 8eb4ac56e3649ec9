package syncengine

import (
	"context"

	"github.com/liftvault/liftvault/internal/models"
)

// RemoteWorkout is one remote document together with its store-assigned id.
type RemoteWorkout struct {
	ID   string
	Data models.WorkoutRecord
}

// RemoteStore is the minimal capability set the engine needs from the remote
// document store: create-with-generated-id (as an atomic batch), get-by-id
// and a date-descending listing. Any document store exposing these is
// substitutable; the Firestore client and the in-memory test fake both
// implement it.
type RemoteStore interface {
	// CreateBatch writes every payload as a new document in a single atomic
	// batch and returns the generated document ids in input order.
	CreateBatch(ctx context.Context, userID string, payloads []map[string]any) ([]string, error)

	Get(ctx context.Context, userID, docID string) (*RemoteWorkout, error)

	ListByDateDesc(ctx context.Context, userID string) ([]RemoteWorkout, error)
}
