package postgre

import (
	"database/sql"

	"dealer-report-srv/internal/tenant/repository"
	"dealer-report-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
