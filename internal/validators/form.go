package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/field-sync/models"
)

// Field names accepted by [FormValidator.Validate] for field-level scoping.
const (
	FieldRecordID          = "record_id"
	FieldApplicationID     = "application_id"
	FieldServiceProviderID = "service_provider_id"
	FieldFormType          = "form_type"
	FieldPayload           = "payload"
	FieldFormVersion       = "version"
)

// FormValidator checks form records on the device and form submissions on the
// intake server.
type FormValidator struct {
}

func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types, by value or
// pointer: models.FormRecord, models.SubmitFormRequest, models.FormSubmission.
//
// Returns ErrUnsupportedType for anything else.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FormRecord:
		return v.validateFormRecord(value, fields...)
	case *models.FormRecord:
		return v.validateFormRecord(*value, fields...)

	case models.SubmitFormRequest:
		return v.validateSubmitRequest(value, fields...)
	case *models.SubmitFormRequest:
		return v.validateSubmitRequest(*value, fields...)

	case models.FormSubmission:
		return v.validateSubmission(value, fields...)
	case *models.FormSubmission:
		return v.validateSubmission(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateFormRecord checks a record before it is saved locally. The id is
// optional because the pipeline assigns one.
func (v *FormValidator) validateFormRecord(rec models.FormRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormType, FieldApplicationID, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if isBlank(rec.ID) {
				return ErrInvalidRecordID
			}
		case FieldFormType:
			if !rec.FormType.Valid() {
				return ErrInvalidFormType
			}
		case FieldApplicationID:
			if isBlank(rec.ApplicationID) {
				return ErrInvalidApplicationID
			}
		case FieldPayload:
			if !isJSONObject(rec.Payload) {
				return ErrInvalidPayload
			}
		case FieldFormVersion:
			if rec.Version < 0 {
				return ErrInvalidFormVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateSubmitRequest(req models.SubmitFormRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldApplicationID, FieldServiceProviderID, FieldPayload, FieldFormVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if isBlank(req.RecordID) {
				return ErrInvalidRecordID
			}
		case FieldApplicationID:
			if isBlank(req.ApplicationID) {
				return ErrInvalidApplicationID
			}
		case FieldServiceProviderID:
			if isBlank(req.ServiceProviderID) {
				return ErrInvalidServiceProviderID
			}
		case FieldPayload:
			if !isJSONObject(req.Payload) {
				return ErrInvalidPayload
			}
		case FieldFormVersion:
			if req.Version <= 0 {
				return ErrInvalidFormVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateSubmission(sub models.FormSubmission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormType}
	}

	for _, f := range fields {
		if f == FieldFormType {
			if !sub.FormType.Valid() {
				return ErrInvalidFormType
			}
			continue
		}
		req := models.SubmitFormRequest{
			RecordID:          sub.RecordID,
			ApplicationID:     sub.ApplicationID,
			ServiceProviderID: sub.ServiceProviderID,
			Version:           sub.Version,
			Payload:           sub.Payload,
		}
		if err := v.validateSubmitRequest(req, f); err != nil {
			return err
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}
