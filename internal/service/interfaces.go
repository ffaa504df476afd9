// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/field-sync/models"
)

// SubmissionService accepts form submissions on the intake server.
type SubmissionService interface {
	// Submit validates and stores sub. Resending a record with a newer
	// version updates it in place; resending an equal or older version is
	// accepted without changes.
	Submit(ctx context.Context, sub models.FormSubmission) (models.SubmitFormResponse, error)
}

type ApplicationService interface {
	List(ctx context.Context, serviceProviderID string) ([]models.Application, error)
}

// AuthService issues and checks device tokens. The token subject is the
// service provider the device works for.
type AuthService interface {
	IssueToken(ctx context.Context, serviceProviderID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
