// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote intake service.
//
// [RemoteService] decouples the sync services from HTTP. Failed calls come
// back either as a [*RemoteError] (the server answered and refused) or
// wrapped in [ErrTransport] (no usable answer), which is the split the push
// classifier relies on.
package adapter

import (
	"context"

	"github.com/MKhiriev/field-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_service_mock.go -package=mock

type RemoteService interface {
	// SubmitForm posts one form to the endpoint of its form type. A 2xx reply
	// counts only when its body says success=true; an empty body, a body
	// without the flag or success=false is reported as a *RemoteError.
	SubmitForm(ctx context.Context, formType models.FormType, req models.SubmitFormRequest) (models.SubmitFormResponse, error)

	// ListApplications returns the applications assigned to the service
	// provider.
	ListApplications(ctx context.Context, serviceProviderID string) ([]models.Application, error)

	// Ping checks that the service is reachable.
	Ping(ctx context.Context) error
}
