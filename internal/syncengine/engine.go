package syncengine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/liftvault/liftvault/internal/models"
	"github.com/liftvault/liftvault/internal/storage"
)

// ErrNotAuthenticated is returned when sync is attempted without a remote
// identity.
var ErrNotAuthenticated = errors.New("no authenticated user for sync")

// maxBatchWrites is the atomic write ceiling of the remote store (the
// Firestore limit). Pushes with more unsynced records than this are split
// into multiple batches; each batch commits atomically on its own.
const maxBatchWrites = 500

var log = logrus.WithField("component", "syncengine")

// Engine reconciles the local record store against the remote document
// store. Both collaborators are explicit constructor dependencies.
type Engine struct {
	store  *storage.Storage
	remote RemoteStore
	userID string
}

func New(store *storage.Storage, remote RemoteStore, userID string) *Engine {
	return &Engine{
		store:  store,
		remote: remote,
		userID: userID,
	}
}

// PushResult reports what one push attempt did. Failed records stay unsynced
// locally and will be retried by a future push.
type PushResult struct {
	Pushed  int `json:"pushed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"` // Already synced.
}

type PullResult struct {
	Downloaded int `json:"downloaded"`
	Merged     int `json:"merged"`
}

// Push uploads every local workout without a synced flag as a new remote
// document in an atomic batch. A record whose payload cannot be built is
// skipped and counted as failed; the batch for the rest still commits. On
// success the pushed records are marked with cloudId/synced/syncedAt and the
// full history is persisted back.
func (e *Engine) Push(ctx context.Context) (*PushResult, error) {
	if e.userID == "" {
		return nil, ErrNotAuthenticated
	}

	history, err := e.store.GetWorkoutHistory(e.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load local history: %w", err)
	}

	result := &PushResult{}
	var payloads []map[string]any
	var pending []int // Indices into history, parallel to payloads.
	for i, rec := range history {
		if rec.Synced {
			result.Skipped++
			continue
		}
		payload, err := buildRemotePayload(rec)
		if err != nil {
			log.WithField("workout", rec.ID).WithError(err).Warn("skipping record that failed payload build")
			result.Failed++
			continue
		}
		payloads = append(payloads, payload)
		pending = append(pending, i)
	}

	if len(payloads) == 0 {
		return result, nil
	}

	var ids []string
	for start := 0; start < len(payloads); start += maxBatchWrites {
		end := start + maxBatchWrites
		if end > len(payloads) {
			end = len(payloads)
		}
		batchIDs, err := e.remote.CreateBatch(ctx, e.userID, payloads[start:end])
		if err != nil {
			return nil, fmt.Errorf("remote batch write failed: %w", err)
		}
		ids = append(ids, batchIDs...)
	}

	now := time.Now()
	for k, idx := range pending {
		history[idx].CloudID = ids[k]
		history[idx].Synced = true
		history[idx].SyncedAt = now
	}
	result.Pushed = len(pending)

	if err := e.store.ReplaceWorkoutHistory(e.userID, history); err != nil {
		return nil, fmt.Errorf("failed to persist synced flags: %w", err)
	}

	log.WithFields(map[string]any{
		"user":    e.userID,
		"pushed":  result.Pushed,
		"failed":  result.Failed,
		"skipped": result.Skipped,
	}).Info("push sync finished")

	return result, nil
}

// Pull downloads every remote workout and merges it into local history with a
// cloud-wins policy: the merge map is seeded from local records keyed by
// cloudId (falling back to id), then overwritten entry by entry by remote
// records keyed by their document id. This is full-record replacement, so a
// local-only edit to a record that also exists remotely is discarded.
func (e *Engine) Pull(ctx context.Context) (*PullResult, error) {
	if e.userID == "" {
		return nil, ErrNotAuthenticated
	}

	remote, err := e.remote.ListByDateDesc(ctx, e.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote workouts: %w", err)
	}

	local, err := e.store.GetWorkoutHistory(e.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load local history: %w", err)
	}

	merged := make(map[string]models.WorkoutRecord, len(local)+len(remote))
	for _, rec := range local {
		key := rec.CloudID
		if key == "" {
			key = rec.ID
		}
		merged[key] = rec
	}
	for _, rw := range remote {
		rec := rw.Data
		rec.CloudID = rw.ID
		rec.Synced = true
		if rec.UserID == "" {
			rec.UserID = e.userID
		}
		merged[rw.ID] = rec
	}

	list := make([]models.WorkoutRecord, 0, len(merged))
	for _, rec := range merged {
		list = append(list, rec)
	}

	// ReplaceWorkoutHistory re-sorts by date descending before persisting.
	if err := e.store.ReplaceWorkoutHistory(e.userID, list); err != nil {
		return nil, fmt.Errorf("failed to persist merged history: %w", err)
	}

	result := &PullResult{
		Downloaded: len(remote),
		Merged:     len(list),
	}

	log.WithFields(map[string]any{
		"user":       e.userID,
		"downloaded": result.Downloaded,
		"merged":     result.Merged,
	}).Info("pull sync finished")

	return result, nil
}

// buildRemotePayload turns a record into the remote document shape via a JSON
// round trip, so the document fields match the local blob format exactly.
func buildRemotePayload(rec models.WorkoutRecord) (map[string]any, error) {
	if rec.Date.IsZero() {
		return nil, errors.New("workout has no date")
	}
	if rec.ID == "" {
		return nil, errors.New("workout has no id")
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode workout: %w", err)
	}
	payload := map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	payload["synced"] = true
	payload["syncedAt"] = time.Now().Format(time.RFC3339)
	return payload, nil
}
