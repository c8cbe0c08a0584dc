package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-config-service/internal/domain"
)

// FieldConfigurationRepository encapsulates field configuration persistence.
// Lookups treat "no row" as a first-class nil result: a missing configuration
// is a legitimate resolution outcome, not a failure.
type FieldConfigurationRepository interface {
	GetActiveByScope(ctx context.Context, scope domain.Scope, fieldName string) (*domain.FieldConfiguration, error)
	ExistsActive(ctx context.Context, scope domain.Scope, fieldName string) (bool, error)
	Create(ctx context.Context, cfg *domain.FieldConfiguration) error
	WithTx(tx pgx.Tx) FieldConfigurationRepository
}

type fieldConfigurationRepository struct {
	db DB
}

// NewFieldConfigurationRepository instantiates repository.
func NewFieldConfigurationRepository(db DB) FieldConfigurationRepository {
	return &fieldConfigurationRepository{db: db}
}

func (r *fieldConfigurationRepository) WithTx(tx pgx.Tx) FieldConfigurationRepository {
	return &fieldConfigurationRepository{db: tx}
}

const fieldConfigurationColumns = `id, tenant_id, customer_id, field_name, display_name, field_type,
               is_required, is_system_field, sort_order, is_active, created_at, updated_at`

func (r *fieldConfigurationRepository) GetActiveByScope(ctx context.Context, scope domain.Scope, fieldName string) (*domain.FieldConfiguration, error) {
	query := `
        SELECT ` + fieldConfigurationColumns + `
        FROM field_configurations
        WHERE tenant_id=$1 AND customer_id IS NULL AND field_name=$2 AND is_active`
	args := []any{scope.TenantID(), fieldName}
	if customerID, ok := scope.CustomerID(); ok {
		query = `
        SELECT ` + fieldConfigurationColumns + `
        FROM field_configurations
        WHERE tenant_id=$1 AND customer_id=$2 AND field_name=$3 AND is_active`
		args = []any{scope.TenantID(), customerID, fieldName}
	}

	var cfg domain.FieldConfiguration
	if err := r.db.QueryRow(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.TenantID,
		&cfg.CustomerID,
		&cfg.FieldName,
		&cfg.DisplayName,
		&cfg.FieldType,
		&cfg.IsRequired,
		&cfg.IsSystemField,
		&cfg.SortOrder,
		&cfg.IsActive,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *fieldConfigurationRepository) ExistsActive(ctx context.Context, scope domain.Scope, fieldName string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM field_configurations
            WHERE tenant_id=$1 AND customer_id IS NULL AND field_name=$2 AND is_active
        )`
	args := []any{scope.TenantID(), fieldName}
	if customerID, ok := scope.CustomerID(); ok {
		query = `
        SELECT EXISTS (
            SELECT 1 FROM field_configurations
            WHERE tenant_id=$1 AND customer_id=$2 AND field_name=$3 AND is_active
        )`
		args = []any{scope.TenantID(), customerID, fieldName}
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *fieldConfigurationRepository) Create(ctx context.Context, cfg *domain.FieldConfiguration) error {
	const query = `
        INSERT INTO field_configurations (tenant_id, customer_id, field_name, display_name, field_type, is_required, is_system_field, sort_order, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		cfg.TenantID,
		cfg.CustomerID,
		cfg.FieldName,
		cfg.DisplayName,
		cfg.FieldType,
		cfg.IsRequired,
		cfg.IsSystemField,
		cfg.SortOrder,
		cfg.IsActive,
	).Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
}
