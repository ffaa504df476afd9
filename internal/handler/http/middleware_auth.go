package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The token is verified with [service.AuthService.ParseToken]; on success the
// service provider it was issued to is stored in the request context under
// [utils.ServiceProviderIDCtxKey]. Every rejection is a 401 with kind
// "unauthorized".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, err)
			return
		}

		ctx = context.WithValue(ctx, utils.ServiceProviderIDCtxKey, token.ServiceProviderID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
