package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownFormType is returned by [ParseFormType] for unsupported names.
var ErrUnknownFormType = errors.New("unknown form type")

// FormType identifies one of the submittable field forms. Its value doubles as
// the entity type stored in the sync queue.
type FormType string

const (
	EmptyingScheduling FormType = "EMPTYING_SCHEDULING_FORM"
	SitePreparation    FormType = "SITE_PREPARATION_FORM"
	EmptyingService    FormType = "EMPTYING_SERVICE_FORM"
	Containment        FormType = "CONTAINMENT_FORM"
)

// FormTypes lists every supported form type in a stable order.
var FormTypes = []FormType{
	EmptyingScheduling,
	SitePreparation,
	EmptyingService,
	Containment,
}

var formTypePaths = map[FormType]string{
	EmptyingScheduling: "emptying-scheduling",
	SitePreparation:    "site-preparation",
	EmptyingService:    "emptying-service",
	Containment:        "containment",
}

// Valid reports whether t is a supported form type.
func (t FormType) Valid() bool {
	_, ok := formTypePaths[t]
	return ok
}

// EntityType returns the sync queue entity type for forms of this type.
func (t FormType) EntityType() string {
	return string(t)
}

// Path returns the URL path segment the remote service uses for t.
func (t FormType) Path() string {
	return formTypePaths[t]
}

func (t FormType) String() string {
	return string(t)
}

// ParseFormType accepts either the entity type ("EMPTYING_SCHEDULING_FORM") or
// the path segment ("emptying-scheduling"), case-insensitively.
func ParseFormType(value string) (FormType, error) {
	v := strings.TrimSpace(value)
	for t, path := range formTypePaths {
		if strings.EqualFold(v, string(t)) || strings.EqualFold(v, path) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormType, value)
}

// FormRecord is the local, durable copy of one field form.
//
// Exactly one record exists per (FormType, ApplicationID); saves upsert on that
// pair and keep the ID assigned at creation.
type FormRecord struct {
	ID            string          `json:"id"`
	FormType      FormType        `json:"form_type"`
	ApplicationID string          `json:"application_id"`
	Payload       json.RawMessage `json:"payload"`

	SyncStatus      SyncStatus `json:"sync_status"`
	SyncAttempts    int        `json:"sync_attempts"`
	LastSyncAttempt *time.Time `json:"last_sync_attempt,omitempty"`
	SyncError       *string    `json:"sync_error,omitempty"`

	// Version is bumped by the store on every local mutation and sent with
	// each push, so a push of an older version cannot mark a newer save synced.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SyncState is the subset of [FormRecord] that a push attempt rewrites.
type SyncState struct {
	SyncStatus      SyncStatus
	SyncAttempts    int
	LastSyncAttempt *time.Time
	SyncError       *string
}
