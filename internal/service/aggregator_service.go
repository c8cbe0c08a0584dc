package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/helpdesk-config-service/internal/domain"
)

// WellKnownFields is the fixed set of ticket fields enumerated by the
// complete-configuration report, in report order.
var WellKnownFields = []string{"priority", "status", "category", "urgency", "impact", "environment"}

// FieldInheritance summarizes which layer won for a field, independently for
// the configuration and the option set.
type FieldInheritance struct {
	ConfigSource        domain.ConfigSource
	OptionsSource       domain.ConfigSource
	HasCustomerOverride bool
	HasCustomerOptions  bool
}

// FieldReport is the resolved state of one field at a scope.
type FieldReport struct {
	FieldName     string
	Configuration *domain.FieldConfiguration
	Options       []domain.FieldOption
	Inheritance   FieldInheritance
}

// AggregatorService produces consolidated configuration reports on top of the
// resolver.
type AggregatorService struct {
	resolver *ResolverService
}

// NewAggregatorService constructs the service.
func NewAggregatorService(resolver *ResolverService) *AggregatorService {
	return &AggregatorService{resolver: resolver}
}

// ResolveField resolves one field at a scope and derives its inheritance
// summary. Configuration and options resolve independently and may come from
// different layers.
func (s *AggregatorService) ResolveField(ctx context.Context, scope domain.Scope, fieldName string) (FieldReport, error) {
	cfg, err := s.resolver.ResolveFieldConfiguration(ctx, scope, fieldName)
	if err != nil {
		return FieldReport{}, err
	}
	options, err := s.resolver.ResolveFieldOptions(ctx, scope, fieldName)
	if err != nil {
		return FieldReport{}, err
	}

	inheritance := FieldInheritance{ConfigSource: domain.SourceNone, OptionsSource: domain.SourceNone}
	if cfg != nil {
		inheritance.ConfigSource = cfg.Source
		inheritance.HasCustomerOverride = cfg.Source == domain.SourceCustomer
	}
	if len(options) > 0 {
		inheritance.OptionsSource = options[0].Source
		inheritance.HasCustomerOptions = options[0].Source == domain.SourceCustomer
	}

	return FieldReport{
		FieldName:     fieldName,
		Configuration: cfg,
		Options:       options,
		Inheritance:   inheritance,
	}, nil
}

// GetCustomerCompleteConfiguration resolves every well-known field for a
// customer. Fields touch disjoint rows, so they resolve concurrently; the
// result keeps the fixed field order regardless of completion order. Exactly
// one entry per well-known field is returned even when everything resolves
// to "none".
func (s *AggregatorService) GetCustomerCompleteConfiguration(ctx context.Context, tenantID, customerID string) ([]FieldReport, error) {
	scope := domain.CustomerScope(tenantID, customerID)
	reports := make([]FieldReport, len(WellKnownFields))

	g, ctx := errgroup.WithContext(ctx)
	for i, fieldName := range WellKnownFields {
		g.Go(func() error {
			report, err := s.ResolveField(ctx, scope, fieldName)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
