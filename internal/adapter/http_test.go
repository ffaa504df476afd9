// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/field-sync/internal/config"
	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/models"
)

func newTestRemote(t *testing.T, serverURL string) *httpRemoteService {
	t.Helper()
	cfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
		Token:          "test-token",
	}

	r, err := NewHTTPRemoteService(cfg, logger.Nop())
	require.NoError(t, err)
	return r.(*httpRemoteService)
}

func testSubmitRequest() models.SubmitFormRequest {
	return models.SubmitFormRequest{
		RecordID:          "rec-1",
		ApplicationID:     "app-1",
		ServiceProviderID: "sp-1",
		Version:           2,
		Payload:           json.RawMessage(`{"volume":3}`),
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── SubmitForm ──────────────────────────────────────────────────────────────

func TestSubmitForm_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/forms/emptying-service", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var got models.SubmitFormRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "rec-1", got.RecordID)
		assert.Equal(t, int64(2), got.Version)
		assert.JSONEq(t, `{"volume":3}`, string(got.Payload))

		writeJSON(t, w, http.StatusCreated, models.SubmitFormResponse{Success: true, Message: "stored"})
	}))
	defer srv.Close()

	r := newTestRemote(t, srv.URL)
	resp, err := r.SubmitForm(context.Background(), models.EmptyingService, testSubmitRequest())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "stored", resp.Message)
}

func TestSubmitForm_UnacknowledgedReplyIsRemoteError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "no content", status: http.StatusNoContent, body: ""},
		{name: "empty body", status: http.StatusOK, body: ""},
		{name: "empty object", status: http.StatusOK, body: `{}`},
		{name: "no success flag", status: http.StatusOK, body: `{"message":"gateway says hi"}`},
		{name: "html page", status: http.StatusOK, body: `<html>sign in to the wifi</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := newTestRemote(t, srv.URL).SubmitForm(context.Background(), models.Containment, testSubmitRequest())

			assert.False(t, resp.Success)
			var remoteErr *RemoteError
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, tt.status, remoteErr.StatusCode)
			assert.Equal(t, models.ErrorKindNone, remoteErr.Kind)
		})
	}
}

func TestSubmitForm_SuccessFalseOn2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.SubmitFormResponse{
			Success:   false,
			Message:   "application closed",
			ErrorKind: models.ErrorKindValidation,
		})
	}))
	defer srv.Close()

	_, err := newTestRemote(t, srv.URL).SubmitForm(context.Background(), models.Containment, testSubmitRequest())

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusOK, remoteErr.StatusCode)
	assert.Equal(t, models.ErrorKindValidation, remoteErr.Kind)
	assert.Equal(t, "application closed", remoteErr.Message)
}

func TestSubmitForm_StructuredErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   models.ErrorKind
	}{
		{name: "validation", status: http.StatusUnprocessableEntity, kind: models.ErrorKindValidation},
		{name: "duplicate", status: http.StatusConflict, kind: models.ErrorKindDuplicateKey},
		{name: "not found", status: http.StatusNotFound, kind: models.ErrorKindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.SubmitFormResponse{Message: tt.name, ErrorKind: tt.kind})
			}))
			defer srv.Close()

			_, err := newTestRemote(t, srv.URL).SubmitForm(context.Background(), models.SitePreparation, testSubmitRequest())

			var remoteErr *RemoteError
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, tt.status, remoteErr.StatusCode)
			assert.Equal(t, tt.kind, remoteErr.Kind)
			assert.Equal(t, tt.name, remoteErr.Message)
		})
	}
}

func TestSubmitForm_ServerErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestRemote(t, srv.URL).SubmitForm(context.Background(), models.Containment, testSubmitRequest())

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
	assert.Equal(t, models.ErrorKindNone, remoteErr.Kind)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), remoteErr.Message)
}

func TestSubmitForm_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := newTestRemote(t, srv.URL).SubmitForm(context.Background(), models.Containment, testSubmitRequest())

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "upstream down", remoteErr.Message)
}

func TestSubmitForm_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.SubmitFormResponse{
			Message:   "token expired",
			ErrorKind: models.ErrorKindUnauthorized,
		})
	}))
	defer srv.Close()

	_, err := newTestRemote(t, srv.URL).SubmitForm(context.Background(), models.Containment, testSubmitRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSubmitForm_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestRemote(t, url).SubmitForm(context.Background(), models.Containment, testSubmitRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestSubmitForm_UnknownFormType(t *testing.T) {
	r := newTestRemote(t, "http://127.0.0.1:1")

	_, err := r.SubmitForm(context.Background(), models.FormType("BUILDING"), testSubmitRequest())

	assert.ErrorIs(t, err, models.ErrUnknownFormType)
}

func TestSubmitForm_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRemote(t, srv.URL).SubmitForm(ctx, models.Containment, testSubmitRequest())

	assert.ErrorIs(t, err, ErrTransport)
}

// ── ListApplications ────────────────────────────────────────────────────────

func TestListApplications_Success(t *testing.T) {
	proposed := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/applications", r.URL.Path)
		assert.Equal(t, "sp-1", r.URL.Query().Get("service_provider_id"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.ApplicationListResponse{
			Applications: []models.Application{
				{ID: "app-1", ServiceProviderID: "sp-1", CustomerName: "Amina", ProposedDate: &proposed},
				{ID: "app-2", ServiceProviderID: "sp-1", CustomerName: "Kofi"},
			},
			Length: 2,
		})
	}))
	defer srv.Close()

	apps, err := newTestRemote(t, srv.URL).ListApplications(context.Background(), "sp-1")

	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "app-1", apps[0].ID)
	require.NotNil(t, apps[0].ProposedDate)
	assert.True(t, proposed.Equal(*apps[0].ProposedDate))
	assert.Nil(t, apps[1].ProposedDate)
}

func TestListApplications_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"length": 0})
	}))
	defer srv.Close()

	apps, err := newTestRemote(t, srv.URL).ListApplications(context.Background(), "sp-1")

	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestListApplications_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestRemote(t, srv.URL).ListApplications(context.Background(), "sp-1")

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusServiceUnavailable, remoteErr.StatusCode)
}

// ── Ping / token ────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, newTestRemote(t, srv.URL).Ping(context.Background()))

	srv.Close()
	assert.ErrorIs(t, newTestRemote(t, srv.URL).Ping(context.Background()), ErrTransport)
}

func TestSubmitForm_EmptyTokenSendsNoAuthorization(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Values("Authorization")
		writeJSON(t, w, http.StatusOK, models.SubmitFormResponse{Success: true})
	}))
	defer srv.Close()

	r, err := NewHTTPRemoteService(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: time.Second, Token: "   "}, logger.Nop())
	require.NoError(t, err)

	_, err = r.SubmitForm(context.Background(), models.Containment, testSubmitRequest())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSubmitForm_StampsPayloadHash(t *testing.T) {
	var got models.SubmitFormRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, http.StatusOK, models.SubmitFormResponse{Success: true})
	}))
	defer srv.Close()

	req := testSubmitRequest()
	req.Payload = json.RawMessage(`{ "volume": 3 }`)

	_, err := newTestRemote(t, srv.URL).SubmitForm(context.Background(), models.Containment, req)
	require.NoError(t, err)

	want, err := utils.PayloadHash(json.RawMessage(`{"volume":3}`))
	require.NoError(t, err)
	assert.Equal(t, want, got.PayloadHash)
}

func TestSubmitForm_GzipsLargeBodies(t *testing.T) {
	var got models.SubmitFormRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gzip", r.Header.Get("Content-Encoding"))

		zr, err := gzip.NewReader(r.Body)
		require.NoError(t, err)
		defer zr.Close()
		require.NoError(t, json.NewDecoder(zr).Decode(&got))

		writeJSON(t, w, http.StatusOK, models.SubmitFormResponse{Success: true})
	}))
	defer srv.Close()

	req := testSubmitRequest()
	req.Payload = json.RawMessage(`{"notes":"` + strings.Repeat("sludge level high; ", 100) + `"}`)

	_, err := newTestRemote(t, srv.URL).SubmitForm(context.Background(), models.EmptyingService, req)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", got.RecordID)
	assert.JSONEq(t, string(req.Payload), string(got.Payload))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://api.example.org/", want: "https://api.example.org"},
		{in: "  http://10.0.0.1:80  ", want: "http://10.0.0.1:80"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPRemoteService_InvalidAddress(t *testing.T) {
	_, err := NewHTTPRemoteService(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())
	assert.Error(t, err)
}
