package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncStatus_String(t *testing.T) {
	tests := []struct {
		status SyncStatus
		want   string
	}{
		{SyncStatusDraft, "DRAFT"},
		{SyncStatusPending, "PENDING"},
		{SyncStatusSynced, "SYNCED"},
		{SyncStatusFailed, "FAILED"},
		{SyncStatus(42), "SyncStatus(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestParseSyncStatus(t *testing.T) {
	got, err := ParseSyncStatus("SYNCED")
	require.NoError(t, err)
	assert.Equal(t, SyncStatusSynced, got)

	_, err = ParseSyncStatus("synced")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSyncStatus)

	_, err = ParseSyncStatus("")
	assert.ErrorIs(t, err, ErrUnknownSyncStatus)
}

func TestSyncStatus_Scan(t *testing.T) {
	var s SyncStatus

	require.NoError(t, s.Scan("PENDING"))
	assert.Equal(t, SyncStatusPending, s)

	require.NoError(t, s.Scan([]byte("FAILED")))
	assert.Equal(t, SyncStatusFailed, s)

	assert.ErrorIs(t, s.Scan(nil), ErrUnknownSyncStatus)
	assert.ErrorIs(t, s.Scan(int64(1)), ErrUnknownSyncStatus)
	assert.ErrorIs(t, s.Scan("DONE"), ErrUnknownSyncStatus)
}

func TestSyncStatus_Value(t *testing.T) {
	v, err := SyncStatusSynced.Value()
	require.NoError(t, err)
	assert.Equal(t, "SYNCED", v)

	_, err = SyncStatus(9).Value()
	assert.ErrorIs(t, err, ErrUnknownSyncStatus)
}

func TestSyncStatus_JSON(t *testing.T) {
	rec := FormRecord{ID: "F1", SyncStatus: SyncStatusPending}

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"sync_status":"PENDING"`)

	var decoded FormRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, SyncStatusPending, decoded.SyncStatus)

	err = json.Unmarshal([]byte(`{"sync_status":"MAYBE"}`), &decoded)
	assert.ErrorIs(t, err, ErrUnknownSyncStatus)
}

// ── FormType ─────────────────────────────────────────────────────────────────

func TestParseFormType(t *testing.T) {
	tests := []struct {
		in      string
		want    FormType
		wantErr bool
	}{
		{in: "EMPTYING_SCHEDULING_FORM", want: EmptyingScheduling},
		{in: "emptying-scheduling", want: EmptyingScheduling},
		{in: " Site-Preparation ", want: SitePreparation},
		{in: "emptying_service_form", want: EmptyingService},
		{in: "containment", want: Containment},
		{in: "building-survey", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormType_PathAndEntityType(t *testing.T) {
	for _, ft := range FormTypes {
		assert.True(t, ft.Valid())
		assert.NotEmpty(t, ft.Path())
		assert.Equal(t, string(ft), ft.EntityType())
	}
	assert.False(t, FormType("OTHER").Valid())
	assert.Empty(t, FormType("OTHER").Path())
}

func TestCachedListItem_IsValid(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, CachedListItem{CacheExpiry: now.Add(time.Second)}.IsValid(now))
	assert.False(t, CachedListItem{CacheExpiry: now}.IsValid(now))
	assert.False(t, CachedListItem{CacheExpiry: now.Add(-time.Minute)}.IsValid(now))
}

func TestSyncReport_Add(t *testing.T) {
	r := SyncReport{EntityType: "X", Succeeded: 1}
	r.Add(SyncReport{Succeeded: 2, Failed: 1, Orphaned: 3})
	assert.Equal(t, SyncReport{EntityType: "X", Succeeded: 3, Failed: 1, Orphaned: 3}, r)
}
