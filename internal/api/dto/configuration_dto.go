package dto

// FieldConfigurationResponse is the wire form of a resolved configuration.
type FieldConfigurationResponse struct {
	ID            string `json:"id"`
	FieldName     string `json:"field_name"`
	DisplayName   string `json:"display_name"`
	FieldType     string `json:"field_type"`
	IsRequired    bool   `json:"is_required"`
	IsSystemField bool   `json:"is_system_field"`
	SortOrder     int    `json:"sort_order"`
	Source        string `json:"source"`
}

// FieldOptionResponse is the wire form of a resolved option.
type FieldOptionResponse struct {
	ID           string  `json:"id"`
	OptionValue  string  `json:"option_value"`
	DisplayLabel string  `json:"display_label"`
	ColorHex     string  `json:"color_hex"`
	IconName     *string `json:"icon_name,omitempty"`
	SortOrder    int     `json:"sort_order"`
	IsDefault    bool    `json:"is_default"`
	Source       string  `json:"source"`
}

// InheritanceSummary reports which layer won, per aspect.
type InheritanceSummary struct {
	ConfigSource        string `json:"config_source"`
	OptionsSource       string `json:"options_source"`
	HasCustomerOverride bool   `json:"has_customer_override"`
	HasCustomerOptions  bool   `json:"has_customer_options"`
}

// FieldReportResponse is one entry of the complete-configuration report and
// the response shape of the single-field resolution endpoints.
type FieldReportResponse struct {
	FieldName     string                      `json:"field_name"`
	Configuration *FieldConfigurationResponse `json:"configuration"`
	Options       []FieldOptionResponse       `json:"options"`
	Inheritance   InheritanceSummary          `json:"inheritance"`
}

// CreateOverrideOptionRequest is one option of a new override.
type CreateOverrideOptionRequest struct {
	Value     string  `json:"value"`
	Label     string  `json:"label"`
	ColorHex  string  `json:"color_hex,omitempty"`
	IconName  *string `json:"icon_name,omitempty"`
	IsDefault bool    `json:"is_default,omitempty"`
}

// CreateOverrideRequest creates a customer-specific field configuration.
type CreateOverrideRequest struct {
	FieldName   string                        `json:"field_name"`
	DisplayName string                        `json:"display_name"`
	Options     []CreateOverrideOptionRequest `json:"options"`
}

// CreateOverrideResponse returns the created rows.
type CreateOverrideResponse struct {
	Configuration FieldConfigurationResponse `json:"field_configuration"`
	Options       []FieldOptionResponse      `json:"field_options"`
}
