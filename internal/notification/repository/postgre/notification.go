package postgre

import (
	"context"
	"database/sql"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/notification/repository"
)

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Notification, error) {
	if opt.Tenant.IsZero() {
		return model.Notification{}, repository.ErrMissingTenant
	}

	n := model.Notification{
		DealershipID:  opt.Tenant.DealershipID(),
		UserID:        opt.UserID,
		Title:         opt.Title,
		Message:       opt.Message,
		Type:          opt.Type,
		Channel:       opt.Channel,
		ReferenceType: opt.ReferenceType,
		ReferenceID:   opt.ReferenceID,
		SentAt:        opt.SentAt,
	}
	err := r.db.QueryRowContext(ctx, insertNotificationQuery,
		n.DealershipID, nullString(n.UserID), n.Title, n.Message, n.Type, n.Channel,
		nullString(n.ReferenceType), nullString(n.ReferenceID), n.SentAt,
	).Scan(&n.ID)
	if err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.Create: Failed to insert notification: %v", err)
		return model.Notification{}, err
	}
	return n, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
