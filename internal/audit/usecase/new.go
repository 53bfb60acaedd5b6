package usecase

import (
	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/audit/repository"
	"dealer-report-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

func New(repo repository.PostgresRepository, l log.Logger) audit.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
