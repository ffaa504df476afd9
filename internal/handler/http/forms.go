package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/metrics"
	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/models"
)

// submitForm handles POST /api/forms/{formType}. The path segment accepts
// either the form path ("emptying-scheduling") or the entity type name.
func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	formType, err := models.ParseFormType(chi.URLParam(r, "formType"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitForm").Msg("unknown form type")
		metrics.IncSubmission("unknown", writeError(w, fmt.Errorf("%w: %w", errUnknownFormType, err)))
		return
	}

	serviceProviderID, found := utils.GetServiceProviderIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.submitForm").Msg("no service provider was given")
		metrics.IncSubmission(formType.String(), writeError(w, errNoServiceProvider))
		return
	}

	var req models.SubmitFormRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.submitForm").Msg("Invalid JSON was passed")
		metrics.IncSubmission(formType.String(), writeError(w, fmt.Errorf("%w: %w", errInvalidJSON, err)))
		return
	}

	if req.ServiceProviderID == "" {
		req.ServiceProviderID = serviceProviderID
	}
	if req.ServiceProviderID != serviceProviderID {
		log.Warn().
			Str("func", "*Handler.submitForm").
			Str("token_service_provider_id", serviceProviderID).
			Str("body_service_provider_id", req.ServiceProviderID).
			Msg("service provider mismatch")
		metrics.IncSubmission(formType.String(), writeError(w, errServiceProviderMismatch))
		return
	}

	resp, err := h.services.SubmissionService.Submit(ctx, models.FormSubmission{
		RecordID:          req.RecordID,
		FormType:          formType,
		ApplicationID:     req.ApplicationID,
		ServiceProviderID: req.ServiceProviderID,
		Version:           req.Version,
		Payload:           req.Payload,
	})
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.submitForm").
			Str("record_id", req.RecordID).
			Msg("submission rejected")
		metrics.IncSubmission(formType.String(), writeError(w, err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
	metrics.IncSubmission(formType.String(), http.StatusOK)
}
