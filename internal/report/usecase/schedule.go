package usecase

import (
	"context"

	"dealer-report-srv/internal/report"
)

// Schedule hands a report request to the consumer through Kafka.
// The request is checked here so bad triggers never reach the topic.
func (uc *implUseCase) Schedule(ctx context.Context, ip report.ScheduleInput) error {
	if ip.UserID == "" {
		return report.ErrUnauthorized
	}
	if _, err := buildOptions(ip.GenerateInput); err != nil {
		return err
	}
	if uc.prod == nil {
		uc.l.Errorf(ctx, "report.usecase.Schedule: No producer configured")
		return report.ErrScheduleFailed
	}

	if err := uc.prod.PublishScheduled(ctx, ip); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Schedule: Failed to publish schedule %s: %v", ip.ScheduleID, err)
		return report.ErrScheduleFailed
	}
	return nil
}
