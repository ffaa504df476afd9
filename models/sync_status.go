package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrUnknownSyncStatus is returned when a textual sync status does not match
// any of the known [SyncStatus] values.
var ErrUnknownSyncStatus = errors.New("unknown sync status")

// SyncStatus is the synchronisation state of a locally stored form.
//
// The zero value is [SyncStatusDraft]. Values are persisted and transmitted as
// their upper-case names ("DRAFT", "PENDING", "SYNCED", "FAILED").
type SyncStatus uint8

const (
	// SyncStatusDraft marks a form that was opened but never submitted.
	SyncStatusDraft SyncStatus = iota
	// SyncStatusPending marks a form saved locally and waiting for a push.
	SyncStatusPending
	// SyncStatusSynced marks a form accepted by the remote service.
	SyncStatusSynced
	// SyncStatusFailed marks a form that will not be pushed again without an
	// explicit retry.
	SyncStatusFailed
)

var syncStatusNames = [...]string{
	SyncStatusDraft:   "DRAFT",
	SyncStatusPending: "PENDING",
	SyncStatusSynced:  "SYNCED",
	SyncStatusFailed:  "FAILED",
}

// String implements [fmt.Stringer].
func (s SyncStatus) String() string {
	if int(s) < len(syncStatusNames) {
		return syncStatusNames[s]
	}
	return fmt.Sprintf("SyncStatus(%d)", uint8(s))
}

// Valid reports whether s is one of the declared statuses.
func (s SyncStatus) Valid() bool {
	return int(s) < len(syncStatusNames)
}

// ParseSyncStatus converts the persisted name back into a [SyncStatus].
func ParseSyncStatus(value string) (SyncStatus, error) {
	for i, name := range syncStatusNames {
		if name == value {
			return SyncStatus(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSyncStatus, value)
}

// MarshalText implements [encoding.TextMarshaler].
func (s SyncStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSyncStatus, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *SyncStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseSyncStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements [driver.Valuer].
func (s SyncStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSyncStatus, uint8(s))
	}
	return s.String(), nil
}

// Scan implements [sql.Scanner].
func (s *SyncStatus) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	case nil:
		return fmt.Errorf("%w: NULL", ErrUnknownSyncStatus)
	default:
		return fmt.Errorf("%w: unsupported column type %T", ErrUnknownSyncStatus, src)
	}
}
