package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/field-sync/models"
)

// mapHTTPError returns nil for 2xx responses and a *RemoteError otherwise.
// The kind and message are taken from a JSON body when there is one, the
// raw body or the status text otherwise.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	remoteErr := &RemoteError{StatusCode: code}

	body := strings.TrimSpace(string(resp.Body()))
	var structured models.SubmitFormResponse
	if body != "" && json.Unmarshal([]byte(body), &structured) == nil {
		remoteErr.Kind = structured.ErrorKind
		remoteErr.Message = structured.Message
	} else {
		remoteErr.Message = body
	}

	if remoteErr.Message == "" {
		remoteErr.Message = http.StatusText(code)
	}

	return remoteErr
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}
