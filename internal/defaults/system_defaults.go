package defaults

import (
	"github.com/spec-kit/helpdesk-config-service/internal/domain"
)

// Provider is the resolution floor: a compiled-in catalog of field
// configurations and options consulted when neither a customer override nor a
// tenant default exists. It performs no I/O and never fails; field names
// outside the catalog yield nil / empty, which callers treat as a legitimate
// "not configured" result rather than an error.
type Provider struct{}

// NewProvider constructs the static catalog provider.
func NewProvider() *Provider {
	return &Provider{}
}

type defaultEntry struct {
	configuration domain.FieldConfiguration
	options       []domain.FieldOption
}

var catalog = map[string]defaultEntry{
	"priority": {
		configuration: domain.FieldConfiguration{
			ID:            "system-priority",
			FieldName:     "priority",
			DisplayName:   "Prioridade",
			FieldType:     "select",
			IsRequired:    true,
			IsSystemField: true,
			SortOrder:     1,
			IsActive:      true,
		},
		options: []domain.FieldOption{
			{ID: "system-priority-low", FieldConfigurationID: "system-priority", OptionValue: "low", DisplayLabel: "Baixa", ColorHex: "#10B981", SortOrder: 1, IsActive: true},
			{ID: "system-priority-medium", FieldConfigurationID: "system-priority", OptionValue: "medium", DisplayLabel: "Média", ColorHex: "#F59E0B", SortOrder: 2, IsDefault: true, IsActive: true},
			{ID: "system-priority-high", FieldConfigurationID: "system-priority", OptionValue: "high", DisplayLabel: "Alta", ColorHex: "#EF4444", SortOrder: 3, IsActive: true},
			{ID: "system-priority-critical", FieldConfigurationID: "system-priority", OptionValue: "critical", DisplayLabel: "Crítica", ColorHex: "#991B1B", SortOrder: 4, IsActive: true},
		},
	},
	"status": {
		configuration: domain.FieldConfiguration{
			ID:            "system-status",
			FieldName:     "status",
			DisplayName:   "Status",
			FieldType:     "select",
			IsRequired:    true,
			IsSystemField: true,
			SortOrder:     2,
			IsActive:      true,
		},
		options: []domain.FieldOption{
			{ID: "system-status-open", FieldConfigurationID: "system-status", OptionValue: "open", DisplayLabel: "Aberto", ColorHex: "#3B82F6", SortOrder: 1, IsDefault: true, IsActive: true},
			{ID: "system-status-in-progress", FieldConfigurationID: "system-status", OptionValue: "in_progress", DisplayLabel: "Em Andamento", ColorHex: "#F59E0B", SortOrder: 2, IsActive: true},
			{ID: "system-status-resolved", FieldConfigurationID: "system-status", OptionValue: "resolved", DisplayLabel: "Resolvido", ColorHex: "#10B981", SortOrder: 3, IsActive: true},
			{ID: "system-status-closed", FieldConfigurationID: "system-status", OptionValue: "closed", DisplayLabel: "Fechado", ColorHex: "#6B7280", SortOrder: 4, IsActive: true},
		},
	},
}

// GetDefaultConfiguration returns the built-in configuration for a field, or
// nil when the catalog does not know it. The returned value is a copy.
func (p *Provider) GetDefaultConfiguration(fieldName string) *domain.FieldConfiguration {
	entry, ok := catalog[fieldName]
	if !ok {
		return nil
	}
	cfg := entry.configuration
	return &cfg
}

// GetDefaultOptions returns the built-in option set for a field ordered by
// sort order, or an empty slice when the catalog does not know it. The
// returned slice is a copy.
func (p *Provider) GetDefaultOptions(fieldName string) []domain.FieldOption {
	entry, ok := catalog[fieldName]
	if !ok {
		return []domain.FieldOption{}
	}
	options := make([]domain.FieldOption, len(entry.options))
	copy(options, entry.options)
	return options
}
