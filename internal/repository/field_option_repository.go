package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-config-service/internal/domain"
)

// FieldOptionRepository encapsulates field option persistence. Options are
// scoped independently of their parent configuration: a customer may carry
// its own option rows against a tenant-level configuration, so the scope
// filter applies to the option rows while the field name comes from the
// parent join.
type FieldOptionRepository interface {
	ListActiveByScope(ctx context.Context, scope domain.Scope, fieldName string) ([]domain.FieldOption, error)
	Create(ctx context.Context, option *domain.FieldOption) error
	WithTx(tx pgx.Tx) FieldOptionRepository
}

type fieldOptionRepository struct {
	db DB
}

// NewFieldOptionRepository instantiates repository.
func NewFieldOptionRepository(db DB) FieldOptionRepository {
	return &fieldOptionRepository{db: db}
}

func (r *fieldOptionRepository) WithTx(tx pgx.Tx) FieldOptionRepository {
	return &fieldOptionRepository{db: tx}
}

const fieldOptionColumns = `o.id, o.field_configuration_id, o.tenant_id, o.customer_id, o.option_value,
               o.display_label, o.color_hex, o.icon_name, o.sort_order, o.is_default, o.is_active, o.created_at`

func (r *fieldOptionRepository) ListActiveByScope(ctx context.Context, scope domain.Scope, fieldName string) ([]domain.FieldOption, error) {
	query := `
        SELECT ` + fieldOptionColumns + `
        FROM field_options o
        JOIN field_configurations c ON c.id = o.field_configuration_id
        WHERE o.tenant_id=$1 AND o.customer_id IS NULL AND c.field_name=$2 AND o.is_active AND c.is_active
        ORDER BY o.sort_order, o.id`
	args := []any{scope.TenantID(), fieldName}
	if customerID, ok := scope.CustomerID(); ok {
		query = `
        SELECT ` + fieldOptionColumns + `
        FROM field_options o
        JOIN field_configurations c ON c.id = o.field_configuration_id
        WHERE o.tenant_id=$1 AND o.customer_id=$2 AND c.field_name=$3 AND o.is_active AND c.is_active
        ORDER BY o.sort_order, o.id`
		args = []any{scope.TenantID(), customerID, fieldName}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFieldOptions(rows)
}

func (r *fieldOptionRepository) Create(ctx context.Context, option *domain.FieldOption) error {
	const query = `
        INSERT INTO field_options (field_configuration_id, tenant_id, customer_id, option_value, display_label, color_hex, icon_name, sort_order, is_default, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		option.FieldConfigurationID,
		option.TenantID,
		option.CustomerID,
		option.OptionValue,
		option.DisplayLabel,
		option.ColorHex,
		option.IconName,
		option.SortOrder,
		option.IsDefault,
		option.IsActive,
	).Scan(&option.ID, &option.CreatedAt)
}

func scanFieldOptions(rows pgx.Rows) ([]domain.FieldOption, error) {
	result := []domain.FieldOption{}
	for rows.Next() {
		var option domain.FieldOption
		if err := rows.Scan(
			&option.ID,
			&option.FieldConfigurationID,
			&option.TenantID,
			&option.CustomerID,
			&option.OptionValue,
			&option.DisplayLabel,
			&option.ColorHex,
			&option.IconName,
			&option.SortOrder,
			&option.IsDefault,
			&option.IsActive,
			&option.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, option)
	}
	return result, rows.Err()
}
