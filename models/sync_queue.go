package models

import (
	"encoding/json"
	"time"
)

const (
	// DefaultMaxRetries is the number of push attempts a queued form gets
	// before it is marked failed.
	DefaultMaxRetries = 3

	// DefaultPriority is assigned to every queue entry. Higher values are
	// serviced first.
	DefaultPriority = 0
)

// Operation is the kind of mutation a queue entry represents.
type Operation string

const (
	OperationCreate Operation = "CREATE"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

// SyncQueueEntry is a pending mutation waiting to be pushed to the remote
// service. An entry exists only while its entity is PENDING.
type SyncQueueEntry struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Operation  Operation `json:"operation"`

	// Data is the payload snapshot taken at enqueue time. It is kept for
	// diagnostics; pushes always read the current record.
	Data json.RawMessage `json:"data"`

	RetryCount int `json:"retry_count"`
	MaxRetries int `json:"max_retries"`
	Priority   int `json:"priority"`

	CreatedAt    time.Time  `json:"created_at"`
	LastAttempt  *time.Time `json:"last_attempt,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
}
