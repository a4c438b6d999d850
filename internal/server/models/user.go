// Package models defines the server-side domain model: tenants, users and
// contacts, plus the sentinel errors services translate into HTTP statuses.
package models

import "time"

// User is an account row. PasswordHash never leaves the server.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	TenantID     int64
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// Tenant groups users of one organization. Registration auto-creates the
// tenant when the requested name does not exist yet.
type Tenant struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// DefaultTenantName is used when registration does not name a tenant.
const DefaultTenantName = "default"
