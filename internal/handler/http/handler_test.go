package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/service"
	"github.com/MKhiriev/field-sync/internal/store"
	"github.com/MKhiriev/field-sync/models"
)

// ── service stubs ────────────────────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

type mockAuthService struct {
	parseTokenFn func(ctx context.Context, s string) (models.Token, error)
}

func (m *mockAuthService) IssueToken(context.Context, string) (models.Token, error) {
	return models.Token{}, errors.New("not used")
}

func (m *mockAuthService) ParseToken(ctx context.Context, s string) (models.Token, error) {
	return m.parseTokenFn(ctx, s)
}

type mockSubmissionService struct {
	got      models.FormSubmission
	called   bool
	submitFn func(models.FormSubmission) (models.SubmitFormResponse, error)
}

func (m *mockSubmissionService) Submit(_ context.Context, sub models.FormSubmission) (models.SubmitFormResponse, error) {
	m.called = true
	m.got = sub
	return m.submitFn(sub)
}

type mockApplicationService struct {
	gotServiceProvider string
	apps               []models.Application
	err                error
}

func (m *mockApplicationService) List(_ context.Context, serviceProviderID string) ([]models.Application, error) {
	m.gotServiceProvider = serviceProviderID
	return m.apps, m.err
}

// tokenFor accepts "valid-<sp>" tokens and rejects everything else.
func tokenFor(_ context.Context, s string) (models.Token, error) {
	sp, ok := strings.CutPrefix(s, "valid-")
	if !ok {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{ServiceProviderID: sp}, nil
}

type testServer struct {
	submissions  *mockSubmissionService
	applications *mockApplicationService
	router       http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		submissions: &mockSubmissionService{submitFn: func(models.FormSubmission) (models.SubmitFormResponse, error) {
			return models.SubmitFormResponse{Success: true, Message: "submission stored"}, nil
		}},
		applications: &mockApplicationService{},
	}

	h := NewHandler(&service.Services{
		SubmissionService:  ts.submissions,
		ApplicationService: ts.applications,
		AuthService:        &mockAuthService{parseTokenFn: tokenFor},
		AppInfoService:     &mockAppInfoService{version: "1.2.3"},
	}, logger.Nop())
	ts.router = h.Init()

	return ts
}

func (ts *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if raw, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(raw))
	} else {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func decodeFailure(t *testing.T, rr *httptest.ResponseRecorder) models.SubmitFormResponse {
	t.Helper()
	var resp models.SubmitFormResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp
}

func validRequest() models.SubmitFormRequest {
	return models.SubmitFormRequest{
		RecordID:          "F1",
		ApplicationID:     "42",
		ServiceProviderID: "sp-1",
		Version:           1,
		Payload:           json.RawMessage(`{"date":"2026-04-01"}`),
	}
}

// ── routes ───────────────────────────────────────────────────────────────────

func TestInit_PublicRoutes(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = ts.do(http.MethodGet, "/version", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))

	rr = ts.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "field_sync_http_requests_total")
}

func TestInit_ProtectedRoutesNeedToken(t *testing.T) {
	ts := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/forms/emptying-scheduling"},
		{http.MethodGet, "/api/applications"},
	} {
		rr := ts.do(tc.method, tc.path, "", validRequest())
		assert.Equal(t, http.StatusUnauthorized, rr.Code, tc.path)
		assert.Equal(t, models.ErrorKindUnauthorized, decodeFailure(t, rr).ErrorKind)
	}
	assert.False(t, ts.submissions.called)
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(http.MethodDelete, "/api/health", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_TraceIDEchoed(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))

	rr = ts.do(http.MethodGet, "/api/health", "", nil)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// ── forms ────────────────────────────────────────────────────────────────────

func TestSubmitForm_Success(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(http.MethodPost, "/api/forms/emptying-scheduling", "valid-sp-1", validRequest())
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.SubmitFormResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "submission stored", resp.Message)

	got := ts.submissions.got
	assert.Equal(t, models.EmptyingScheduling, got.FormType)
	assert.Equal(t, "F1", got.RecordID)
	assert.Equal(t, "42", got.ApplicationID)
	assert.Equal(t, int64(1), got.Version)
	assert.JSONEq(t, `{"date":"2026-04-01"}`, string(got.Payload))
}

func TestSubmitForm_EntityTypeInPath(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(http.MethodPost, "/api/forms/CONTAINMENT_FORM", "valid-sp-1", validRequest())
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.Containment, ts.submissions.got.FormType)
}

func TestSubmitForm_ServiceProviderFromToken(t *testing.T) {
	ts := newTestServer(t)

	req := validRequest()
	req.ServiceProviderID = ""
	rr := ts.do(http.MethodPost, "/api/forms/site-preparation", "valid-sp-1", req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "sp-1", ts.submissions.got.ServiceProviderID)
}

func TestSubmitForm_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		token    string
		body     any
		submitFn func(models.FormSubmission) (models.SubmitFormResponse, error)
		wantCode int
		wantKind models.ErrorKind
	}{
		{
			name:     "unknown form type",
			path:     "/api/forms/building-survey",
			token:    "valid-sp-1",
			body:     validRequest(),
			wantCode: http.StatusNotFound,
			wantKind: models.ErrorKindNotFound,
		},
		{
			name:     "invalid token",
			path:     "/api/forms/containment",
			token:    "forged",
			body:     validRequest(),
			wantCode: http.StatusUnauthorized,
			wantKind: models.ErrorKindUnauthorized,
		},
		{
			name:     "malformed JSON",
			path:     "/api/forms/containment",
			token:    "valid-sp-1",
			body:     `{"record_id":`,
			wantCode: http.StatusBadRequest,
			wantKind: models.ErrorKindValidation,
		},
		{
			name:     "body for another provider",
			path:     "/api/forms/containment",
			token:    "valid-sp-2",
			body:     validRequest(),
			wantCode: http.StatusForbidden,
			wantKind: models.ErrorKindUnauthorized,
		},
		{
			name:  "validation",
			path:  "/api/forms/containment",
			token: "valid-sp-1",
			body:  validRequest(),
			submitFn: func(models.FormSubmission) (models.SubmitFormResponse, error) {
				return models.SubmitFormResponse{}, service.ErrInvalidDataProvided
			},
			wantCode: http.StatusUnprocessableEntity,
			wantKind: models.ErrorKindValidation,
		},
		{
			name:  "unknown application",
			path:  "/api/forms/containment",
			token: "valid-sp-1",
			body:  validRequest(),
			submitFn: func(models.FormSubmission) (models.SubmitFormResponse, error) {
				return models.SubmitFormResponse{}, errors.Join(service.ErrUnknownApplication, service.ErrForeignApplication)
			},
			wantCode: http.StatusNotFound,
			wantKind: models.ErrorKindNotFound,
		},
		{
			name:  "duplicate",
			path:  "/api/forms/containment",
			token: "valid-sp-1",
			body:  validRequest(),
			submitFn: func(models.FormSubmission) (models.SubmitFormResponse, error) {
				return models.SubmitFormResponse{}, store.ErrDuplicateSubmission
			},
			wantCode: http.StatusConflict,
			wantKind: models.ErrorKindDuplicateKey,
		},
		{
			name:  "foreign key",
			path:  "/api/forms/containment",
			token: "valid-sp-1",
			body:  validRequest(),
			submitFn: func(models.FormSubmission) (models.SubmitFormResponse, error) {
				return models.SubmitFormResponse{}, store.ErrUnknownReference
			},
			wantCode: http.StatusUnprocessableEntity,
			wantKind: models.ErrorKindForeignKey,
		},
		{
			name:  "storage unavailable",
			path:  "/api/forms/containment",
			token: "valid-sp-1",
			body:  validRequest(),
			submitFn: func(models.FormSubmission) (models.SubmitFormResponse, error) {
				return models.SubmitFormResponse{}, store.ErrStorageUnavailable
			},
			wantCode: http.StatusServiceUnavailable,
			wantKind: models.ErrorKindServer,
		},
		{
			name:  "unexpected",
			path:  "/api/forms/containment",
			token: "valid-sp-1",
			body:  validRequest(),
			submitFn: func(models.FormSubmission) (models.SubmitFormResponse, error) {
				return models.SubmitFormResponse{}, errors.New("pq: something odd")
			},
			wantCode: http.StatusInternalServerError,
			wantKind: models.ErrorKindServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			if tt.submitFn != nil {
				ts.submissions.submitFn = tt.submitFn
			}

			rr := ts.do(http.MethodPost, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantKind, decodeFailure(t, rr).ErrorKind)
			assert.Equal(t, tt.submitFn != nil, ts.submissions.called)
		})
	}
}

func TestSubmitForm_InternalErrorMessageHidden(t *testing.T) {
	ts := newTestServer(t)
	ts.submissions.submitFn = func(models.FormSubmission) (models.SubmitFormResponse, error) {
		return models.SubmitFormResponse{}, errors.New("dial tcp 10.1.1.1:5432: connection refused")
	}

	rr := ts.do(http.MethodPost, "/api/forms/containment", "valid-sp-1", validRequest())
	assert.Equal(t, "Internal Server Error", decodeFailure(t, rr).Message)
}

// ── applications ─────────────────────────────────────────────────────────────

func TestListApplications(t *testing.T) {
	ts := newTestServer(t)
	ts.applications.apps = []models.Application{{ID: "42", ServiceProviderID: "sp-1", CustomerName: "Amina"}}

	rr := ts.do(http.MethodGet, "/api/applications?service_provider_id=sp-1", "valid-sp-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.ApplicationListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Length)
	assert.Equal(t, "Amina", resp.Applications[0].CustomerName)
	assert.Equal(t, "sp-1", ts.applications.gotServiceProvider)
}

func TestListApplications_EmptyIsArray(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(http.MethodGet, "/api/applications", "valid-sp-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"applications":[],"length":0}`, rr.Body.String())
}

func TestListApplications_OtherProviderForbidden(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(http.MethodGet, "/api/applications?service_provider_id=sp-2", "valid-sp-1", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, ts.applications.gotServiceProvider)
}

func TestListApplications_StoreError(t *testing.T) {
	ts := newTestServer(t)
	ts.applications.err = store.ErrStorageUnavailable

	rr := ts.do(http.MethodGet, "/api/applications", "valid-sp-1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, models.ErrorKindServer, decodeFailure(t, rr).ErrorKind)
}
