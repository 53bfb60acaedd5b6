package usecase

import (
	"dealer-report-srv/internal/importer"
	"dealer-report-srv/internal/importer/repository"
	"dealer-report-srv/internal/tenant"
	"dealer-report-srv/pkg/log"
)

const DefaultMaxRows = 5000

type implUseCase struct {
	repo     repository.PostgresRepository
	tenantUC tenant.UseCase
	l        log.Logger
	maxRows  int
}

func New(repo repository.PostgresRepository, tenantUC tenant.UseCase, l log.Logger, maxRows int) importer.UseCase {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	return &implUseCase{
		repo:     repo,
		tenantUC: tenantUC,
		l:        l,
		maxRows:  maxRows,
	}
}
