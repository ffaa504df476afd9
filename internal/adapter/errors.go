package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/field-sync/models"
)

var (
	// ErrTransport wraps every failure where no response was received:
	// timeouts, refused connections, DNS errors, cancelled contexts.
	ErrTransport = errors.New("remote service unreachable")

	ErrUnauthorized = errors.New("client unauthorized")
)

// RemoteError is a response the remote service sent back as a failure.
type RemoteError struct {
	StatusCode int
	// Kind is the structured error category from the response body; empty
	// when the server did not send one.
	Kind    models.ErrorKind
	Message string
}

func (e *RemoteError) Error() string {
	if e.Kind != models.ErrorKindNone {
		return fmt.Sprintf("remote error %d (%s): %s", e.StatusCode, e.Kind, e.Message)
	}
	return fmt.Sprintf("remote error %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) match a 401 reply.
func (e *RemoteError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}
