package domain

import "time"

// FieldOption is one selectable value belonging to a FieldConfiguration. It
// inherits the (tenant, customer) scoping of its parent configuration.
type FieldOption struct {
	ID                   string
	FieldConfigurationID string
	TenantID             string
	CustomerID           *string
	OptionValue          string
	DisplayLabel         string
	ColorHex             string
	IconName             *string
	SortOrder            int
	IsDefault            bool
	IsActive             bool
	CreatedAt            time.Time

	// Source is computed at resolution time, never persisted.
	Source ConfigSource
}
