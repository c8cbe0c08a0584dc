package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-config-service/internal/domain"
	"github.com/spec-kit/helpdesk-config-service/internal/events"
	"github.com/spec-kit/helpdesk-config-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-config-service/pkg/util"
)

const defaultOptionColor = "#3B82F6"

// WriterService materializes customer-specific overrides, establishing a
// customer-layer hit for subsequent resolutions.
type WriterService struct {
	db         repository.TxBeginner
	configs    repository.FieldConfigurationRepository
	options    repository.FieldOptionRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// WriterDependencies bundles collaborators for the writer.
type WriterDependencies struct {
	DB         repository.TxBeginner
	ConfigRepo repository.FieldConfigurationRepository
	OptionRepo repository.FieldOptionRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// OverrideOptionInput describes one option of a new override.
type OverrideOptionInput struct {
	Value     string
	Label     string
	ColorHex  string
	IconName  *string
	IsDefault bool
}

// OverrideInput describes a new customer-specific field configuration.
type OverrideInput struct {
	DisplayName string
	Options     []OverrideOptionInput
}

// NewWriterService constructs the service.
func NewWriterService(deps WriterDependencies) *WriterService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WriterService{
		db:         deps.DB,
		configs:    deps.ConfigRepo,
		options:    deps.OptionRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// CreateCustomerSpecificConfiguration inserts a configuration row and its
// option rows in one transaction. The payload is validated before any write;
// an existing active override for the same scope and field fails with
// CONFLICT, backed by a partial unique index at the store layer.
func (s *WriterService) CreateCustomerSpecificConfiguration(ctx context.Context, tenantID, customerID, fieldName string, input OverrideInput) (*domain.FieldConfiguration, []domain.FieldOption, error) {
	fieldName = strings.TrimSpace(fieldName)
	if err := validateOverrideInput(fieldName, input); err != nil {
		return nil, nil, err
	}

	scope := domain.CustomerScope(tenantID, customerID)
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	txConfigs := s.configs.WithTx(tx)
	txOptions := s.options.WithTx(tx)

	exists, err := txConfigs.ExistsActive(ctx, scope, fieldName)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, apperrors.NewConflict("field configuration already exists for customer", map[string]any{
			"field_name":  fieldName,
			"customer_id": customerID,
		})
	}

	cfg := &domain.FieldConfiguration{
		TenantID:    tenantID,
		CustomerID:  &customerID,
		FieldName:   fieldName,
		DisplayName: strings.TrimSpace(input.DisplayName),
		FieldType:   "select",
		IsRequired:  true,
		IsActive:    true,
	}
	if err := txConfigs.Create(ctx, cfg); err != nil {
		return nil, nil, err
	}

	created := make([]domain.FieldOption, 0, len(input.Options))
	for i, optInput := range input.Options {
		color := strings.TrimSpace(optInput.ColorHex)
		if color == "" {
			color = defaultOptionColor
		}
		option := domain.FieldOption{
			FieldConfigurationID: cfg.ID,
			TenantID:             tenantID,
			CustomerID:           &customerID,
			OptionValue:          strings.TrimSpace(optInput.Value),
			DisplayLabel:         strings.TrimSpace(optInput.Label),
			ColorHex:             color,
			IconName:             optInput.IconName,
			SortOrder:            i + 1,
			IsDefault:            optInput.IsDefault,
			IsActive:             true,
		}
		if err := txOptions.Create(ctx, &option); err != nil {
			return nil, nil, err
		}
		created = append(created, option)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	s.logger.Info("customer field configuration created",
		zap.String("tenant_id", tenantID),
		zap.String("customer_id", customerID),
		zap.String("field_name", fieldName),
		zap.Int("options", len(created)))
	s.publishCreated(ctx, tenantID, customerID, fieldName, cfg.ID)

	return cfg, created, nil
}

func (s *WriterService) publishCreated(ctx context.Context, tenantID, customerID, fieldName, configurationID string) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventFieldConfigurationCreated,
		TenantID:  tenantID,
		Timestamp: time.Now(),
		Payload: events.FieldConfigurationCreatedPayload{
			ConfigurationID: configurationID,
			CustomerID:      customerID,
			FieldName:       fieldName,
		},
	})
	if err != nil {
		s.logger.Warn("configuration created event delivery failed", zap.Error(err))
	}
}

func validateOverrideInput(fieldName string, input OverrideInput) error {
	if fieldName == "" {
		return apperrors.NewValidationError("field_name required", nil)
	}
	if strings.TrimSpace(input.DisplayName) == "" {
		return apperrors.NewValidationError("display_name required", nil)
	}
	if len(input.Options) == 0 {
		return apperrors.NewValidationError("at least one option required", nil)
	}
	for i, opt := range input.Options {
		if strings.TrimSpace(opt.Value) == "" || strings.TrimSpace(opt.Label) == "" {
			return apperrors.NewValidationError("option value and label required", map[string]any{"index": i})
		}
	}
	return nil
}
