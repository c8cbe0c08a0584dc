package domain

import "time"

// ConfigSource records which layer a resolved value came from.
type ConfigSource string

const (
	SourceCustomer ConfigSource = "customer"
	SourceTenant   ConfigSource = "tenant"
	SourceSystem   ConfigSource = "system"
	// SourceNone marks the absence of any resolved value in reports.
	SourceNone ConfigSource = "none"
)

// FieldConfiguration describes one logical ticket field. Rows are scoped by
// tenant and optionally customer; system defaults carry neither and use
// "system-<field>" identifiers.
type FieldConfiguration struct {
	ID            string
	TenantID      string
	CustomerID    *string
	FieldName     string
	DisplayName   string
	FieldType     string
	IsRequired    bool
	IsSystemField bool
	SortOrder     int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Source is computed at resolution time, never persisted.
	Source ConfigSource
}
