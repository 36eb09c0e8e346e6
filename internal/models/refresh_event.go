package models

import "time"

// Refresh event types.
const (
	EventFetchOK          = "FETCH_OK"
	EventFetchFailed      = "FETCH_FAILED"
	EventSnapshotRestored = "SNAPSHOT_RESTORED"
)

// RefreshEvent is a single entry of the dataset refresh log.
type RefreshEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // FETCH_OK | FETCH_FAILED | SNAPSHOT_RESTORED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
