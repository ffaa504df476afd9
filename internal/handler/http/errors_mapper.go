package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/field-sync/internal/service"
	"github.com/MKhiriev/field-sync/internal/store"
	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/models"
)

// errorStatus is the status code and error kind reported for a failure.
type errorStatus struct {
	code int
	kind models.ErrorKind
}

var errorStatusMap = map[error]errorStatus{
	service.ErrInvalidDataProvided:     {http.StatusUnprocessableEntity, models.ErrorKindValidation},
	service.ErrUnknownApplication:      {http.StatusNotFound, models.ErrorKindNotFound},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, models.ErrorKindUnauthorized},

	store.ErrDuplicateSubmission: {http.StatusConflict, models.ErrorKindDuplicateKey},
	store.ErrUnknownReference:    {http.StatusUnprocessableEntity, models.ErrorKindForeignKey},
	store.ErrInvalidData:         {http.StatusUnprocessableEntity, models.ErrorKindValidation},
	store.ErrStorageUnavailable:  {http.StatusServiceUnavailable, models.ErrorKindServer},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, models.ErrorKindUnauthorized},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, models.ErrorKindUnauthorized},

	errInvalidJSON:             {http.StatusBadRequest, models.ErrorKindValidation},
	errUnknownFormType:         {http.StatusNotFound, models.ErrorKindNotFound},
	errNoServiceProvider:       {http.StatusUnauthorized, models.ErrorKindUnauthorized},
	errServiceProviderMismatch: {http.StatusForbidden, models.ErrorKindUnauthorized},

	// damaged in transit, the client sends the same form again
	errPayloadHashMismatch: {http.StatusBadRequest, models.ErrorKindNone},
	errInvalidGzip:         {http.StatusBadRequest, models.ErrorKindNone},
}

func statusFromError(err error) errorStatus {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return errorStatus{http.StatusInternalServerError, models.ErrorKindServer}
}

// writeError writes the structured failure body and returns the status code
// that was sent. Messages of internal errors are not exposed.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)

	message := err.Error()
	if status.code == http.StatusInternalServerError {
		message = http.StatusText(status.code)
	}

	utils.WriteJSON(w, models.SubmitFormResponse{
		Success:   false,
		Message:   message,
		ErrorKind: status.kind,
	}, status.code)

	return status.code
}
