package store

import (
	sq "github.com/Masterminds/squirrel"
)

var applicationColumns = []string{
	"id",
	"service_provider_id",
	"customer_name",
	"address",
	"status",
	"proposed_date",
}

const (
	// A conflicting record id only takes the new row when it is a newer
	// version of the same form slot.
	saveSubmission = `
		INSERT INTO form_submissions (
			record_id,
			form_type,
			application_id,
			service_provider_id,
			version,
			payload,
			received_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (record_id) DO UPDATE SET
			payload     = EXCLUDED.payload,
			version     = EXCLUDED.version,
			received_at = EXCLUDED.received_at
		WHERE form_submissions.version < EXCLUDED.version
			AND form_submissions.form_type = EXCLUDED.form_type
			AND form_submissions.application_id = EXCLUDED.application_id;`

	getSubmissionByRecordID = `
		SELECT record_id, form_type, application_id, service_provider_id, version, payload, received_at
		FROM form_submissions
		WHERE record_id = $1;`

	upsertApplication = `
		INSERT INTO applications (id, service_provider_id, customer_name, address, status, proposed_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			service_provider_id = EXCLUDED.service_provider_id,
			customer_name       = EXCLUDED.customer_name,
			address             = EXCLUDED.address,
			status              = EXCLUDED.status,
			proposed_date       = EXCLUDED.proposed_date;`
)

func buildSelectApplicationsQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(applicationColumns...).
		From("applications").
		Where(where).
		OrderBy("proposed_date ASC NULLS LAST", "id ASC").
		ToSql()
}
