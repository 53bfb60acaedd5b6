package model

import "errors"

var ErrEmptyTenant = errors.New("tenant id is required")

// TenantScope is the proof that a query is bound to one dealership.
// It can only be obtained from NewTenantScope, so a zero value means "not scoped".
type TenantScope struct {
	dealershipID string
}

// NewTenantScope binds a scope to dealershipID.
func NewTenantScope(dealershipID string) (TenantScope, error) {
	if dealershipID == "" {
		return TenantScope{}, ErrEmptyTenant
	}
	return TenantScope{dealershipID: dealershipID}, nil
}

// DealershipID returns the tenant the scope is bound to.
func (t TenantScope) DealershipID() string {
	return t.dealershipID
}

// IsZero reports whether t was not built by NewTenantScope.
func (t TenantScope) IsZero() bool {
	return t.dealershipID == ""
}
