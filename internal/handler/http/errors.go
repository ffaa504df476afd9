// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header.
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request errors reported by the handlers themselves.
var (
	errInvalidJSON             = errors.New("invalid JSON was passed")
	errUnknownFormType         = errors.New("unknown form type")
	errNoServiceProvider       = errors.New("no service provider in request context")
	errServiceProviderMismatch = errors.New("service provider does not match the token")
	errPayloadHashMismatch     = errors.New("payload does not match payload_hash")
	errInvalidGzip             = errors.New("invalid gzip data")
)
