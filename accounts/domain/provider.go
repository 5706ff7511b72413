package domain

import "time"

// ProviderRecord is the identity-provider half of an account. The provider
// owns the disabled flag and the login metadata.
type ProviderRecord struct {
	UID         string
	Email       string
	DisplayName string
	Disabled    bool
	RoleClaim   string
	CreatedAt   time.Time
	LastSeenAt  time.Time
}
