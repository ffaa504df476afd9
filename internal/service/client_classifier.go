package service

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/field-sync/internal/adapter"
	"github.com/MKhiriev/field-sync/models"
)

// Classification tells the push path whether a failed submission is worth
// sending again.
type Classification uint8

const (
	Retryable Classification = iota
	Terminal
)

func (c Classification) String() string {
	if c == Terminal {
		return "terminal"
	}
	return "retryable"
}

// Classify switches on the structured error kind of a [adapter.RemoteError]
// and falls back to the HTTP status when the kind is missing or unknown.
// Anything that is not a RemoteError (timeouts, refused connections,
// cancelled contexts) is retryable.
func Classify(err error) Classification {
	var remoteErr *adapter.RemoteError
	if !errors.As(err, &remoteErr) {
		return Retryable
	}

	switch remoteErr.Kind {
	case models.ErrorKindDuplicateKey,
		models.ErrorKindForeignKey,
		models.ErrorKindNotFound,
		models.ErrorKindValidation:
		return Terminal
	case models.ErrorKindServer, models.ErrorKindUnauthorized:
		return Retryable
	}

	switch remoteErr.StatusCode {
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return Terminal
	default:
		return Retryable
	}
}
