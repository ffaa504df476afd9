package http

import (
	"net/http"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/models"
)

const serviceProviderQueryParam = "service_provider_id"

// listApplications handles GET /api/applications. The optional
// service_provider_id query parameter must name the provider of the token.
func (h *Handler) listApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	serviceProviderID, found := utils.GetServiceProviderIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listApplications").Msg("no service provider was given")
		writeError(w, errNoServiceProvider)
		return
	}

	if requested := r.URL.Query().Get(serviceProviderQueryParam); requested != "" && requested != serviceProviderID {
		log.Warn().
			Str("func", "*Handler.listApplications").
			Str("requested", requested).
			Msg("service provider mismatch")
		writeError(w, errServiceProviderMismatch)
		return
	}

	apps, err := h.services.ApplicationService.List(ctx, serviceProviderID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listApplications").Msg("error listing applications")
		writeError(w, err)
		return
	}

	if apps == nil {
		apps = []models.Application{}
	}

	utils.WriteJSON(w, models.ApplicationListResponse{
		Applications: apps,
		Length:       len(apps),
	}, http.StatusOK)
}
