package models

import (
	"encoding/json"
	"time"
)

// ErrorKind is the structured error category the remote service reports in
// failed responses. The empty kind means the server did not say.
type ErrorKind string

const (
	ErrorKindNone         ErrorKind = ""
	ErrorKindDuplicateKey ErrorKind = "duplicate_key"
	ErrorKindForeignKey   ErrorKind = "foreign_key"
	ErrorKindNotFound     ErrorKind = "not_found"
	ErrorKindValidation   ErrorKind = "validation"
	ErrorKindUnauthorized ErrorKind = "unauthorized"
	ErrorKindServer       ErrorKind = "server"
)

// SubmitFormRequest is the body sent to POST /api/forms/{form}.
type SubmitFormRequest struct {
	RecordID          string          `json:"record_id"`
	ApplicationID     string          `json:"application_id"`
	ServiceProviderID string          `json:"service_provider_id"`
	Version           int64           `json:"version"`
	Payload           json.RawMessage `json:"payload"`

	// PayloadHash is the hex SHA-256 of the compacted payload. The server
	// rejects the request when it is set and does not match.
	PayloadHash string `json:"payload_hash,omitempty"`
}

// SubmitFormResponse is the body returned by the form endpoints, both for
// successful and failed submissions.
type SubmitFormResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
}

// Application is a row of the remote application list: the domain object a
// field visit services.
type Application struct {
	ID                string     `json:"id"`
	ServiceProviderID string     `json:"service_provider_id"`
	CustomerName      string     `json:"customer_name"`
	Address           string     `json:"address"`
	Status            string     `json:"status"`
	ProposedDate      *time.Time `json:"proposed_date,omitempty"`
}

// ApplicationListResponse is the body of GET /api/applications.
type ApplicationListResponse struct {
	Applications []Application `json:"applications"`
	Length       int           `json:"length"`
}

// FormSubmission is a form as stored by the remote service.
type FormSubmission struct {
	RecordID          string
	FormType          FormType
	ApplicationID     string
	ServiceProviderID string
	Version           int64
	Payload           json.RawMessage
	ReceivedAt        time.Time
}
