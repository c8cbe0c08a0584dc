package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-config-service/internal/cache"
	"github.com/spec-kit/helpdesk-config-service/internal/defaults"
	"github.com/spec-kit/helpdesk-config-service/internal/domain"
	"github.com/spec-kit/helpdesk-config-service/internal/repository"
)

// ResolverService resolves the effective field configuration and option set
// for a scope by walking the customer → tenant → system fallback chain.
// Configuration and options walk independently: a customer may override only
// the option palette of a field while inheriting its definition, or the other
// way around.
type ResolverService struct {
	configs  repository.FieldConfigurationRepository
	options  repository.FieldOptionRepository
	defaults *defaults.Provider
	cache    *cache.ResolutionCache
	logger   *zap.Logger
}

// ResolverDependencies bundles collaborators for the resolver.
type ResolverDependencies struct {
	ConfigRepo repository.FieldConfigurationRepository
	OptionRepo repository.FieldOptionRepository
	Defaults   *defaults.Provider
	Cache      *cache.ResolutionCache
	Logger     *zap.Logger
}

// NewResolverService constructs the service.
func NewResolverService(deps ResolverDependencies) *ResolverService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResolverService{
		configs:  deps.ConfigRepo,
		options:  deps.OptionRepo,
		defaults: deps.Defaults,
		cache:    deps.Cache,
		logger:   logger,
	}
}

// ResolveFieldConfiguration returns the first active configuration found on
// the fallback chain, tagged with its provenance, or nil when no layer
// (including system defaults) defines the field. A nil result is a
// legitimate "not configured" outcome, not an error; store failures are
// propagated unchanged.
func (s *ResolverService) ResolveFieldConfiguration(ctx context.Context, scope domain.Scope, fieldName string) (*domain.FieldConfiguration, error) {
	if cfg, found := s.cache.GetConfiguration(ctx, scope, fieldName); found {
		return cfg, nil
	}

	for _, layer := range scope.Chain() {
		if layer.Kind() == domain.ScopeKindSystem {
			cfg := s.defaults.GetDefaultConfiguration(fieldName)
			if cfg == nil {
				return nil, nil
			}
			cfg.Source = domain.SourceSystem
			s.cache.SetConfiguration(ctx, scope, fieldName, cfg)
			return cfg, nil
		}

		cfg, err := s.configs.GetActiveByScope(ctx, layer, fieldName)
		if err != nil {
			return nil, err
		}
		if cfg != nil {
			cfg.Source = layer.Source()
			s.logger.Debug("field configuration resolved",
				zap.String("scope", scope.String()),
				zap.String("field", fieldName),
				zap.String("source", string(cfg.Source)))
			s.cache.SetConfiguration(ctx, scope, fieldName, cfg)
			return cfg, nil
		}
	}
	return nil, nil
}

// ResolveFieldOptions returns the active option set of the most specific
// layer that defines any options for the field, ordered by sort order. An
// empty set means no layer defines options, which is a valid terminal state.
func (s *ResolverService) ResolveFieldOptions(ctx context.Context, scope domain.Scope, fieldName string) ([]domain.FieldOption, error) {
	if options, found := s.cache.GetOptions(ctx, scope, fieldName); found {
		return options, nil
	}

	for _, layer := range scope.Chain() {
		if layer.Kind() == domain.ScopeKindSystem {
			options := s.defaults.GetDefaultOptions(fieldName)
			for i := range options {
				options[i].Source = domain.SourceSystem
			}
			s.cache.SetOptions(ctx, scope, fieldName, options)
			return options, nil
		}

		options, err := s.options.ListActiveByScope(ctx, layer, fieldName)
		if err != nil {
			return nil, err
		}
		if len(options) > 0 {
			for i := range options {
				options[i].Source = layer.Source()
			}
			s.cache.SetOptions(ctx, scope, fieldName, options)
			return options, nil
		}
	}
	return []domain.FieldOption{}, nil
}
