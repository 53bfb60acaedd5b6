package model

const (
	PermissionReportsView   = "reports.view"
	PermissionReportsCreate = "reports.create"
)

// Profile is the actor's membership in a dealership, with the permissions of its role.
type Profile struct {
	UserID       string          `json:"user_id"`
	DealershipID string          `json:"dealership_id"`
	RoleID       string          `json:"role_id,omitempty"`
	Email        string          `json:"email,omitempty"`
	Permissions  map[string]bool `json:"permissions"`
}

// Can reports whether the role grants any of perms.
func (p Profile) Can(perms ...string) bool {
	for _, perm := range perms {
		if p.Permissions[perm] {
			return true
		}
	}
	return false
}

// Tenant returns the tenant scope of the profile.
func (p Profile) Tenant() (TenantScope, error) {
	return NewTenantScope(p.DealershipID)
}
