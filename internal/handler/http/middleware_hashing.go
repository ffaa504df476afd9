package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/metrics"
	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/models"
)

// withPayloadHash checks payload_hash of a form submission against the
// payload it came with. Requests without a hash pass unchanged.
func (h *Handler) withPayloadHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var req struct {
			Payload     json.RawMessage `json:"payload"`
			PayloadHash string          `json:"payload_hash"`
		}

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withPayloadHash").Msg("failed to read request body")
			metrics.IncSubmission(formTypeLabel(r), writeError(w, fmt.Errorf("%w: %w", errInvalidJSON, err)))
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if err = json.Unmarshal(body, &req); err != nil {
			log.Err(err).Str("func", "*Handler.withPayloadHash").Msg("failed to decode JSON")
			metrics.IncSubmission(formTypeLabel(r), writeError(w, fmt.Errorf("%w: %w", errInvalidJSON, err)))
			return
		}

		if req.PayloadHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		hashed, err := utils.PayloadHash(req.Payload)
		if err != nil || hashed != req.PayloadHash {
			log.Error().Err(err).
				Str("func", "*Handler.withPayloadHash").
				Str("hash from request", req.PayloadHash).
				Str("hashed payload", hashed).
				Msg("hashes are not equal")
			metrics.IncSubmission(formTypeLabel(r), writeError(w, errPayloadHashMismatch))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func formTypeLabel(r *http.Request) string {
	formType, err := models.ParseFormType(chi.URLParam(r, "formType"))
	if err != nil {
		return "unknown"
	}
	return formType.String()
}
