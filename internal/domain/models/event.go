package models

import "time"

// EventType enumerates audit trail change notifications.
type EventType string

const (
	EventEntryCreated EventType = "entry.created"
	EventEntryDeleted EventType = "entry.deleted"
)

// EntryEvent is the payload published to the notification webhook when an
// entry is created or deleted.
type EntryEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	RowNumber  int       `json:"rowNumber"`
	AssetCode  string    `json:"assetCode"`
	OccurredAt time.Time `json:"occurredAt"`
}
