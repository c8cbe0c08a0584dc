package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-config-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-config-service/internal/auth"
	"github.com/spec-kit/helpdesk-config-service/internal/domain"
	"github.com/spec-kit/helpdesk-config-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-config-service/pkg/util"
)

// ConfigurationHandler exposes hierarchical field configuration resolution.
type ConfigurationHandler struct {
	aggregator *service.AggregatorService
	writer     *service.WriterService
}

// NewConfigurationHandler constructs handler.
func NewConfigurationHandler(aggregator *service.AggregatorService, writer *service.WriterService) *ConfigurationHandler {
	return &ConfigurationHandler{aggregator: aggregator, writer: writer}
}

// GetCustomerCompleteConfiguration GET /customers/:customerId/field-configurations.
func (h *ConfigurationHandler) GetCustomerCompleteConfiguration(c *fiber.Ctx) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	customerID := c.Params("customerId")
	if customerID == "" {
		return apperrors.NewValidationError("customer id required", nil)
	}

	reports, err := h.aggregator.GetCustomerCompleteConfiguration(c.UserContext(), tenant.ID, customerID)
	if err != nil {
		return err
	}
	items := make([]dto.FieldReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, fieldReportResponse(reports[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ResolveCustomerField GET /customers/:customerId/field-configurations/:fieldName.
func (h *ConfigurationHandler) ResolveCustomerField(c *fiber.Ctx) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	customerID := c.Params("customerId")
	fieldName := c.Params("fieldName")
	if customerID == "" || fieldName == "" {
		return apperrors.NewValidationError("customer id and field name required", nil)
	}

	report, err := h.aggregator.ResolveField(c.UserContext(), domain.CustomerScope(tenant.ID, customerID), fieldName)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fieldReportResponse(report)})
}

// ResolveTenantField GET /field-configurations/:fieldName. The customer layer
// is skipped entirely; resolution starts at the tenant-wide row.
func (h *ConfigurationHandler) ResolveTenantField(c *fiber.Ctx) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	fieldName := c.Params("fieldName")
	if fieldName == "" {
		return apperrors.NewValidationError("field name required", nil)
	}

	report, err := h.aggregator.ResolveField(c.UserContext(), domain.TenantScope(tenant.ID), fieldName)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fieldReportResponse(report)})
}

// CreateOverride POST /customers/:customerId/field-configurations.
func (h *ConfigurationHandler) CreateOverride(c *fiber.Ctx) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	customerID := c.Params("customerId")
	if customerID == "" {
		return apperrors.NewValidationError("customer id required", nil)
	}
	var req dto.CreateOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.OverrideInput{
		DisplayName: req.DisplayName,
		Options:     make([]service.OverrideOptionInput, 0, len(req.Options)),
	}
	for _, opt := range req.Options {
		input.Options = append(input.Options, service.OverrideOptionInput{
			Value:     opt.Value,
			Label:     opt.Label,
			ColorHex:  opt.ColorHex,
			IconName:  opt.IconName,
			IsDefault: opt.IsDefault,
		})
	}

	cfg, options, err := h.writer.CreateCustomerSpecificConfiguration(c.UserContext(), tenant.ID, customerID, req.FieldName, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.CreateOverrideResponse{
		Configuration: *configurationResponse(cfg),
		Options:       optionResponses(options),
	}})
}

func requireTenant(c *fiber.Ctx) (*domain.Tenant, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Tenant == nil {
		return nil, apperrors.NewUnauthorized("tenant context required")
	}
	return principal.Tenant, nil
}

func fieldReportResponse(report service.FieldReport) dto.FieldReportResponse {
	return dto.FieldReportResponse{
		FieldName:     report.FieldName,
		Configuration: configurationResponse(report.Configuration),
		Options:       optionResponses(report.Options),
		Inheritance: dto.InheritanceSummary{
			ConfigSource:        string(report.Inheritance.ConfigSource),
			OptionsSource:       string(report.Inheritance.OptionsSource),
			HasCustomerOverride: report.Inheritance.HasCustomerOverride,
			HasCustomerOptions:  report.Inheritance.HasCustomerOptions,
		},
	}
}

func configurationResponse(cfg *domain.FieldConfiguration) *dto.FieldConfigurationResponse {
	if cfg == nil {
		return nil
	}
	return &dto.FieldConfigurationResponse{
		ID:            cfg.ID,
		FieldName:     cfg.FieldName,
		DisplayName:   cfg.DisplayName,
		FieldType:     cfg.FieldType,
		IsRequired:    cfg.IsRequired,
		IsSystemField: cfg.IsSystemField,
		SortOrder:     cfg.SortOrder,
		Source:        string(cfg.Source),
	}
}

func optionResponses(options []domain.FieldOption) []dto.FieldOptionResponse {
	resp := make([]dto.FieldOptionResponse, 0, len(options))
	for _, option := range options {
		resp = append(resp, dto.FieldOptionResponse{
			ID:           option.ID,
			OptionValue:  option.OptionValue,
			DisplayLabel: option.DisplayLabel,
			ColorHex:     option.ColorHex,
			IconName:     option.IconName,
			SortOrder:    option.SortOrder,
			IsDefault:    option.IsDefault,
			Source:       string(option.Source),
		})
	}
	return resp
}
