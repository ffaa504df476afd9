package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/field-sync/models"
)

func TestReadPayload(t *testing.T) {
	raw, err := readPayload(` {"visit_date":"2026-03-01"} `)
	require.NoError(t, err)
	assert.JSONEq(t, `{"visit_date":"2026-03-01"}`, string(raw))

	path := filepath.Join(t.TempDir(), "form.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"volume_m3": 2.5}`+"\n"), 0o600))
	raw, err = readPayload("@" + path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"volume_m3": 2.5}`, string(raw))

	_, err = readPayload("  ")
	assert.ErrorIs(t, err, errEmptyPayload)

	_, err = readPayload("{not json")
	assert.Error(t, err)

	_, err = readPayload("@" + filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRenderStatus(t *testing.T) {
	msg := "network error"
	out := renderStatus([]models.FormRecord{
		{ID: "F1", FormType: models.EmptyingScheduling, ApplicationID: "A1", SyncStatus: models.SyncStatusSynced, Version: 2},
		{ID: "F2", FormType: models.Containment, ApplicationID: "A2", SyncStatus: models.SyncStatusPending, SyncAttempts: 1, SyncError: &msg, Version: 1},
	}, map[string]int{"CONTAINMENT_FORM": 1}, []models.SyncQueueEntry{
		{EntityType: "CONTAINMENT_FORM", EntityID: "F2", RetryCount: 1, MaxRetries: 3, ErrorMessage: &msg},
	})

	assert.Contains(t, out, "F1")
	assert.Contains(t, out, "emptying-scheduling")
	assert.Contains(t, out, "SYNCED")
	assert.Contains(t, out, "network error")
	assert.Contains(t, out, "CONTAINMENT_FORM: 1")
	assert.Contains(t, out, "total: 1")
	assert.Contains(t, out, "LAST ATTEMPT")
	assert.Contains(t, out, "1/3")
}

func TestRenderStatus_Empty(t *testing.T) {
	out := renderStatus(nil, map[string]int{}, nil)
	assert.Contains(t, out, "no forms saved on this device")
	assert.Contains(t, out, "total: 0")
	assert.NotContains(t, out, "LAST ATTEMPT")
}

func TestRenderReportsAndResults(t *testing.T) {
	out := renderReports([]models.SyncReport{{EntityType: "SITE_PREPARATION_FORM", Succeeded: 2, Failed: 1}})
	assert.Contains(t, out, "SITE_PREPARATION_FORM")
	assert.Contains(t, out, "ORPHANED")

	res := renderSaveResult(models.SaveResult{RecordID: "F9", Outcome: models.PushRetry, Message: "saved offline"})
	assert.Contains(t, res, "F9")
	assert.Contains(t, res, "retry")
	assert.Contains(t, res, "saved offline")
}

func TestRenderApplications(t *testing.T) {
	out := renderApplications(
		models.ListResult{State: models.ListError, Message: "showing cached applications"},
		[]models.Application{{ID: "A1", CustomerName: "Wanjiru", Address: "Plot 7", Status: "OPEN"}},
	)
	assert.Contains(t, out, "[error] 1 applications")
	assert.Contains(t, out, "showing cached applications")
	assert.Contains(t, out, "Wanjiru")
}

func TestVersionCmd_SkipsAppSetup(t *testing.T) {
	cmd := newRootCmd(models.NewAppBuildInfo("2.0.0", "2026-10-01", "deadbee"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Build version: 2.0.0")
	assert.Contains(t, out.String(), "Build commit: deadbee")
}

func TestFlagsConfig(t *testing.T) {
	opts := &rootOptions{
		address:           "http://localhost:8080",
		dsn:               "/tmp/field.db",
		token:             "tok",
		serviceProviderID: "sp-1",
	}

	cfg := opts.flagsConfig(models.NewAppBuildInfo("", "", ""))
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/field.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sp-1", cfg.App.ServiceProviderID)
	assert.Empty(t, cfg.App.Version)

	cfg = opts.flagsConfig(models.NewAppBuildInfo("1.2.3", "", ""))
	assert.Equal(t, "1.2.3", cfg.App.Version)
}
