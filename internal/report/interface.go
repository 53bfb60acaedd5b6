package report

import (
	"context"

	"dealer-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)
	Schedule(ctx context.Context, input ScheduleInput) error
}

// Producer publishes report events to the message bus.
type Producer interface {
	PublishGenerated(ctx context.Context, evt GeneratedEvent) error
	PublishScheduled(ctx context.Context, input ScheduleInput) error
}
