package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRecordID          = errors.New("invalid record id")
	ErrInvalidApplicationID     = errors.New("invalid application id")
	ErrInvalidServiceProviderID = errors.New("invalid service provider id")
	ErrInvalidFormType          = errors.New("invalid form type")
	ErrInvalidPayload           = errors.New("payload must be a JSON object")
	ErrInvalidFormVersion       = errors.New("version must be positive")
)
