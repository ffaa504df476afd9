// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/models"
)

func hashedRequest(t *testing.T) models.SubmitFormRequest {
	t.Helper()
	req := validRequest()
	hash, err := utils.PayloadHash(req.Payload)
	require.NoError(t, err)
	req.PayloadHash = hash
	return req
}

func TestSubmitForm_PayloadHash(t *testing.T) {
	tamper := func(r *models.SubmitFormRequest) { r.Payload = json.RawMessage(`{"date":"2026-05-01"}`) }

	tests := []struct {
		name       string
		mutate     func(*models.SubmitFormRequest)
		wantStatus int
		wantCalled bool
	}{
		{name: "matching hash", mutate: func(*models.SubmitFormRequest) {}, wantStatus: http.StatusOK, wantCalled: true},
		{name: "no hash", mutate: func(r *models.SubmitFormRequest) { r.PayloadHash = "" }, wantStatus: http.StatusOK, wantCalled: true},
		{name: "payload changed in transit", mutate: tamper, wantStatus: http.StatusBadRequest},
		{name: "garbage hash", mutate: func(r *models.SubmitFormRequest) { r.PayloadHash = "abc" }, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			req := hashedRequest(t)
			tt.mutate(&req)

			rr := ts.do(http.MethodPost, "/api/forms/emptying-scheduling", "valid-sp-1", req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, ts.submissions.called)
			if !tt.wantCalled {
				resp := decodeFailure(t, rr)
				assert.Equal(t, models.ErrorKindNone, resp.ErrorKind)
			}
		})
	}
}

func TestSubmitForm_HashedGzipBody(t *testing.T) {
	ts := newTestServer(t)

	data, err := json.Marshal(hashedRequest(t))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/forms/emptying-scheduling", bytes.NewReader(gzipBytes(t, data)))
	req.Header.Set("Authorization", "Bearer valid-sp-1")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	var resp models.SubmitFormResponse
	require.NoError(t, json.Unmarshal([]byte(gunzip(t, rr.Body.Bytes())), &resp))
	assert.True(t, resp.Success)

	require.True(t, ts.submissions.called)
	assert.Equal(t, "F1", ts.submissions.got.RecordID)
	assert.JSONEq(t, `{"date":"2026-04-01"}`, string(ts.submissions.got.Payload))
}
