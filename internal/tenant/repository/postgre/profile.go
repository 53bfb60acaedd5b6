package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/tenant/repository"
)

func (r *implRepository) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	var (
		p           model.Profile
		dealership  sql.NullString
		permissions []byte
	)
	err := r.db.QueryRowContext(ctx, getProfileQuery, userID).
		Scan(&p.UserID, &dealership, &p.RoleID, &p.Email, &permissions)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, repository.ErrProfileNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "tenant.repository.postgre.GetProfile: Failed to query profile: %v", err)
		return model.Profile{}, err
	}
	p.DealershipID = dealership.String

	p.Permissions, err = decodePermissions(permissions)
	if err != nil {
		r.l.Warnf(ctx, "tenant.repository.postgre.GetProfile: Ignoring malformed permissions of role %s: %v", p.RoleID, err)
		p.Permissions = map[string]bool{}
	}
	return p, nil
}

// decodePermissions keeps only the keys whose value is literally true.
func decodePermissions(b []byte) (map[string]bool, error) {
	out := map[string]bool{}
	if len(b) == 0 {
		return out, nil
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return out, err
	}
	for k, v := range raw {
		if granted, ok := v.(bool); ok && granted {
			out[k] = true
		}
	}
	return out, nil
}
