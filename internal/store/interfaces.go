// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/field-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SubmissionRepository stores forms received by the intake server.
type SubmissionRepository interface {
	// Save inserts sub, or replaces the stored submission with the same record
	// id when sub carries a newer version. It reports whether a row changed.
	Save(ctx context.Context, sub models.FormSubmission) (bool, error)
	GetByRecordID(ctx context.Context, recordID string) (models.FormSubmission, error)
}

// ApplicationRepository reads and seeds the applications field visits refer to.
type ApplicationRepository interface {
	ListByServiceProvider(ctx context.Context, serviceProviderID string) ([]models.Application, error)
	GetByID(ctx context.Context, id string) (models.Application, error)
	Upsert(ctx context.Context, apps ...models.Application) error
}
