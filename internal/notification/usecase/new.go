package usecase

import (
	"time"

	"dealer-report-srv/internal/notification"
	"dealer-report-srv/internal/notification/repository"
	"dealer-report-srv/internal/tenant"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/ses"
	"dealer-report-srv/pkg/sns"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	tenantUC tenant.UseCase
	mailer   ses.Sender
	sms      sns.Publisher
	l        log.Logger
	now      func() time.Time
}

// New builds the notification usecase. mailer and sms may be nil when the
// channel is not configured; sends on that channel are then reported as errors.
func New(repo repository.PostgresRepository, tenantUC tenant.UseCase, mailer ses.Sender, sms sns.Publisher, l log.Logger) notification.UseCase {
	return &implUseCase{
		repo:     repo,
		tenantUC: tenantUC,
		mailer:   mailer,
		sms:      sms,
		l:        l,
		now:      time.Now,
	}
}
