package repository

import (
	"dealer-report-srv/internal/importer"
	"dealer-report-srv/internal/model"
)

type UpsertOptions struct {
	Tenant         model.TenantScope
	Record         importer.Record
	UpdateExisting bool
}
