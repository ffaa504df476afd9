package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/field-sync/internal/config"
	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/models"
)

const (
	formsPath        = "/api/forms/"
	applicationsPath = "/api/applications"
	healthPath       = "/api/health"
)

type httpRemoteService struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter
	token   string

	logger *logger.Logger
}

// NewHTTPRemoteService builds the resty-backed [RemoteService]. Requests are
// paced at adapterCfg.RateLimit per second; a non-positive limit disables
// pacing.
func NewHTTPRemoteService(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteService, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	limit := rate.Inf
	if adapterCfg.RateLimit > 0 {
		limit = rate.Limit(adapterCfg.RateLimit)
	}

	return &httpRemoteService{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
		token:   strings.TrimSpace(adapterCfg.Token),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SubmitForm posts req to POST /api/forms/{form-path}.
func (h *httpRemoteService) SubmitForm(ctx context.Context, formType models.FormType, req models.SubmitFormRequest) (models.SubmitFormResponse, error) {
	log := logger.FromContext(ctx)

	path := formType.Path()
	if path == "" {
		return models.SubmitFormResponse{}, fmt.Errorf("%w: %q", models.ErrUnknownFormType, formType)
	}

	if err := h.limiter.Wait(ctx); err != nil {
		return models.SubmitFormResponse{}, transportError("submit form", err)
	}

	body, err := encodeSubmitRequest(req)
	if err != nil {
		return models.SubmitFormResponse{}, fmt.Errorf("encode submit request: %w", err)
	}

	request := h.authedRequest(ctx).SetHeader("Content-Type", "application/json")
	if body.gzipped {
		request.SetHeader("Content-Encoding", "gzip")
	}

	resp, err := request.SetBody(body.data).Post(formsPath + path)
	if err != nil {
		log.Debug().Err(err).
			Str("func", "httpRemoteService.SubmitForm").
			Str("record_id", req.RecordID).
			Msg("submit request failed")
		return models.SubmitFormResponse{}, transportError("submit form", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SubmitFormResponse{}, err
	}

	// only an explicit success flag acknowledges the submission
	var out models.SubmitFormResponse
	raw := resp.Body()
	if len(strings.TrimSpace(string(raw))) == 0 {
		return out, &RemoteError{StatusCode: resp.StatusCode(), Message: "empty response body"}
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return models.SubmitFormResponse{}, &RemoteError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("malformed response: %v", err),
		}
	}
	if !out.Success {
		message := out.Message
		if message == "" {
			message = "submission was not acknowledged"
		}
		return out, &RemoteError{StatusCode: resp.StatusCode(), Kind: out.ErrorKind, Message: message}
	}

	return out, nil
}

// ListApplications calls GET /api/applications?service_provider_id=...
func (h *httpRemoteService) ListApplications(ctx context.Context, serviceProviderID string) ([]models.Application, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, transportError("list applications", err)
	}

	var list models.ApplicationListResponse
	resp, err := h.authedRequest(ctx).
		SetQueryParam("service_provider_id", serviceProviderID).
		SetResult(&list).
		Get(applicationsPath)
	if err != nil {
		return nil, transportError("list applications", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if list.Applications == nil {
		list.Applications = []models.Application{}
	}
	return list.Applications, nil
}

func (h *httpRemoteService) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return transportError("ping", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteService) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
