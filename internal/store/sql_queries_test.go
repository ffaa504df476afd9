// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/field-sync/models"
)

var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func Test_buildListFormRecordsQuery(t *testing.T) {
	query, args, err := buildListFormRecordsQuery(sqliteBuilder, models.SitePreparation,
		[]models.SyncStatus{models.SyncStatusPending, models.SyncStatusFailed})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from form_records")
	assert.Contains(t, q, "form_type = ?")
	// squirrel generates IN (?,?) for a slice
	assert.Contains(t, q, "sync_status in (?,?)")
	assert.Contains(t, q, "order by updated_at asc, id asc")
	assert.Equal(t, []any{"SITE_PREPARATION_FORM", "PENDING", "FAILED"}, args)
}

func Test_buildListFormRecordsQuery_NoFilters(t *testing.T) {
	query, args, err := buildListFormRecordsQuery(sqliteBuilder, "", nil)
	require.NoError(t, err)

	assert.NotContains(t, strings.ToLower(query), "where")
	assert.Empty(t, args)
}

func Test_buildUpdateSyncStateQuery(t *testing.T) {
	msg := "boom"
	state := models.SyncState{SyncStatus: models.SyncStatusFailed, SyncAttempts: 3, SyncError: &msg}

	query, args, err := buildUpdateSyncStateQuery(sqliteBuilder, "F1", 7, state)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "update form_records set"))
	assert.Contains(t, q, "version = ?")
	assert.Equal(t, []any{"FAILED", 3, nil, "boom", "F1", int64(7)}, args)

	query, args, err = buildUpdateSyncStateQuery(sqliteBuilder, "F1", 0, state)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(query), "version")
	assert.Len(t, args, 5)

	_, _, err = buildUpdateSyncStateQuery(sqliteBuilder, "F1", 0, models.SyncState{SyncStatus: models.SyncStatus(99)})
	assert.ErrorIs(t, err, models.ErrUnknownSyncStatus)
}

func Test_buildSelectApplicationsQuery_UsesDollarPlaceholders(t *testing.T) {
	pg := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildSelectApplicationsQuery(pg, sq.Eq{"service_provider_id": "sp-1"})
	require.NoError(t, err)

	assert.Contains(t, query, "service_provider_id = $1")
	assert.Contains(t, query, "FROM applications")
	assert.Equal(t, []any{"sp-1"}, args)
}
