package usecase

import (
	"time"

	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/report"
	"dealer-report-srv/internal/report/repository"
	"dealer-report-srv/internal/report/render"
	"dealer-report-srv/internal/tenant"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/minio"
	"dealer-report-srv/pkg/ses"
)

const (
	defaultReportBucket  = "dealer-reports"
	defaultPresignExpiry = 24 * time.Hour
)

// Config holds configuration for report generation.
type Config struct {
	Bucket        string
	PresignExpiry time.Duration
	PreviewCap    int
}

// ArtifactStore is the part of object storage the pipeline needs.
type ArtifactStore interface {
	minio.FileUploader
	minio.FileDownloader
}

type implUseCase struct {
	repo     repository.PostgresRepository
	tenantUC tenant.UseCase
	auditUC  audit.UseCase
	store    ArtifactStore
	mailer   ses.Sender
	prod     report.Producer
	l        log.Logger
	config   Config
	now      func() time.Time
}

// New creates a new report UseCase implementation.
// store, mailer and prod are optional; a delivery that needs a missing one is
// reported as a stage error rather than failing the run.
func New(
	repo repository.PostgresRepository,
	tenantUC tenant.UseCase,
	auditUC audit.UseCase,
	store ArtifactStore,
	mailer ses.Sender,
	prod report.Producer,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.Bucket == "" {
		cfg.Bucket = defaultReportBucket
	}
	if cfg.PresignExpiry <= 0 {
		cfg.PresignExpiry = defaultPresignExpiry
	}
	if cfg.PreviewCap <= 0 {
		cfg.PreviewCap = render.DefaultPreviewCap
	}

	return &implUseCase{
		repo:     repo,
		tenantUC: tenantUC,
		auditUC:  auditUC,
		store:    store,
		mailer:   mailer,
		prod:     prod,
		l:        l,
		config:   cfg,
		now:      time.Now,
	}
}
