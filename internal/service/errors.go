package service

import "errors"

var (
	// ErrLocalWrite is the only failure a Save caller must react to: the form
	// was not stored and nothing was queued.
	ErrLocalWrite = errors.New("form could not be saved locally")

	ErrInvalidForm     = errors.New("invalid form")
	ErrRecordNotFailed = errors.New("only failed records can be retried")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Intake server errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUnknownApplication  = errors.New("application does not exist")
	ErrForeignApplication  = errors.New("application belongs to another service provider")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
