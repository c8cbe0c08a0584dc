package repository

import (
	"context"

	"github.com/spec-kit/helpdesk-config-service/internal/domain"
)

// TenantRepository encapsulates tenant persistence. Lookups return
// pgx.ErrNoRows when the tenant does not exist; callers map that to an
// authorization failure.
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

type tenantRepository struct {
	db DB
}

// NewTenantRepository instantiates repository.
func NewTenantRepository(db DB) TenantRepository {
	return &tenantRepository{db: db}
}

const tenantColumns = `id, slug, name, api_key_hash, is_active, created_at, updated_at`

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	const query = `SELECT ` + tenantColumns + ` FROM tenants WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	const query = `SELECT ` + tenantColumns + ` FROM tenants WHERE slug=$1`
	return r.fetchSingle(ctx, query, slug)
}

func (r *tenantRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&tenant.ID,
		&tenant.Slug,
		&tenant.Name,
		&tenant.APIKeyHash,
		&tenant.IsActive,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &tenant, nil
}
