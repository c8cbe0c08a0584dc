package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-config-service/internal/domain"
	"github.com/spec-kit/helpdesk-config-service/internal/events"
	"github.com/spec-kit/helpdesk-config-service/internal/repository"
)

func scopeFieldKey(scope domain.Scope, fieldName string) string {
	return scope.String() + "|" + fieldName
}

// fakeConfigRepo is an in-memory FieldConfigurationRepository.
type fakeConfigRepo struct {
	mu      sync.Mutex
	configs map[string]domain.FieldConfiguration
	err     error
	gets    int
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[string]domain.FieldConfiguration{}}
}

func (r *fakeConfigRepo) put(scope domain.Scope, cfg domain.FieldConfiguration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[scopeFieldKey(scope, cfg.FieldName)] = cfg
}

func (r *fakeConfigRepo) GetActiveByScope(ctx context.Context, scope domain.Scope, fieldName string) (*domain.FieldConfiguration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	if r.err != nil {
		return nil, r.err
	}
	cfg, ok := r.configs[scopeFieldKey(scope, fieldName)]
	if !ok {
		return nil, nil
	}
	clone := cfg
	return &clone, nil
}

func (r *fakeConfigRepo) ExistsActive(ctx context.Context, scope domain.Scope, fieldName string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.configs[scopeFieldKey(scope, fieldName)]
	return ok, nil
}

func (r *fakeConfigRepo) Create(ctx context.Context, cfg *domain.FieldConfiguration) error {
	if r.err != nil {
		return r.err
	}
	cfg.ID = "cfg-" + cfg.FieldName
	scope := domain.TenantScope(cfg.TenantID)
	if cfg.CustomerID != nil {
		scope = domain.CustomerScope(cfg.TenantID, *cfg.CustomerID)
	}
	r.put(scope, *cfg)
	return nil
}

func (r *fakeConfigRepo) WithTx(tx pgx.Tx) repository.FieldConfigurationRepository {
	return r
}

// fakeOptionRepo is an in-memory FieldOptionRepository.
type fakeOptionRepo struct {
	mu      sync.Mutex
	options map[string][]domain.FieldOption
	err     error
}

func newFakeOptionRepo() *fakeOptionRepo {
	return &fakeOptionRepo{options: map[string][]domain.FieldOption{}}
}

func (r *fakeOptionRepo) put(scope domain.Scope, fieldName string, options []domain.FieldOption) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.options[scopeFieldKey(scope, fieldName)] = options
}

func (r *fakeOptionRepo) ListActiveByScope(ctx context.Context, scope domain.Scope, fieldName string) ([]domain.FieldOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	stored := r.options[scopeFieldKey(scope, fieldName)]
	result := make([]domain.FieldOption, len(stored))
	copy(result, stored)
	return result, nil
}

func (r *fakeOptionRepo) Create(ctx context.Context, option *domain.FieldOption) error {
	if r.err != nil {
		return r.err
	}
	option.ID = "opt-" + option.OptionValue
	return nil
}

func (r *fakeOptionRepo) WithTx(tx pgx.Tx) repository.FieldOptionRepository {
	return r
}

// fakeDispatcher records published events.
type fakeDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *fakeDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *fakeDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}
