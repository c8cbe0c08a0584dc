package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventFieldConfigurationCreated EventType = "field_configuration_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TenantID  string      `json:"tenant_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// FieldConfigurationCreatedPayload payload.
type FieldConfigurationCreatedPayload struct {
	ConfigurationID string `json:"configuration_id"`
	CustomerID      string `json:"customer_id"`
	FieldName       string `json:"field_name"`
}
