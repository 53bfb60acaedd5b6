package postgre

import (
	"context"

	"dealer-report-srv/internal/audit/repository"
	"dealer-report-srv/internal/model"
)

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.AuditLog, error) {
	if opt.Tenant.IsZero() {
		return model.AuditLog{}, repository.ErrMissingTenant
	}

	entry := model.AuditLog{
		DealershipID: opt.Tenant.DealershipID(),
		UserID:       opt.UserID,
		TableName:    opt.TableName,
		Action:       opt.Action,
		NewValues:    opt.NewValues,
	}
	err := r.db.QueryRowContext(ctx, insertAuditLogQuery,
		entry.DealershipID, entry.UserID, entry.TableName, entry.Action, []byte(opt.NewValues),
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.Create: Failed to insert audit log: %v", err)
		return model.AuditLog{}, err
	}
	return entry, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.AuditLog, error) {
	if opt.Tenant.IsZero() {
		return nil, repository.ErrMissingTenant
	}

	rows, err := r.db.QueryContext(ctx, listAuditLogsQuery,
		opt.Tenant.DealershipID(), opt.TableName, opt.Action, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.List: Failed to query audit logs: %v", err)
		return nil, err
	}
	defer rows.Close()

	logs := make([]model.AuditLog, 0)
	for rows.Next() {
		var (
			l         model.AuditLog
			newValues []byte
		)
		if err := rows.Scan(&l.ID, &l.DealershipID, &l.UserID, &l.TableName, &l.Action, &newValues, &l.CreatedAt); err != nil {
			r.l.Errorf(ctx, "audit.repository.postgre.List: Failed to scan audit log: %v", err)
			return nil, err
		}
		l.NewValues = newValues
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.List: Failed to iterate audit logs: %v", err)
		return nil, err
	}
	return logs, nil
}

func (r *implRepository) Count(ctx context.Context, opt repository.CountOptions) (int64, error) {
	if opt.Tenant.IsZero() {
		return 0, repository.ErrMissingTenant
	}

	var total int64
	err := r.db.QueryRowContext(ctx, countAuditLogsQuery, opt.Tenant.DealershipID(), opt.TableName, opt.Action).Scan(&total)
	if err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.Count: Failed to count audit logs: %v", err)
		return 0, err
	}
	return total, nil
}
