package models

import "time"

// AuditSnapshot is an aggregate view of the audit trail persisted to MongoDB
// by the scheduled snapshot job.
type AuditSnapshot struct {
	TakenAt      time.Time      `bson:"taken_at" json:"taken_at"`
	EntryCount   int            `bson:"entry_count" json:"entry_count"`
	TotalValue   float64        `bson:"total_value" json:"total_value"`
	ActionCounts map[string]int `bson:"action_counts" json:"action_counts"`
	CreatedAt    time.Time      `bson:"created_at" json:"created_at"`
}

// ArchivedEntry preserves a deleted audit entry for later recovery. The row
// number recorded here is the position the entry held at deletion time.
type ArchivedEntry struct {
	Entry     Entry     `bson:"entry" json:"entry"`
	RowNumber int       `bson:"row_number" json:"row_number"`
	DeletedAt time.Time `bson:"deleted_at" json:"deleted_at"`
}
