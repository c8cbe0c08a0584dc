package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-config-service/internal/domain"
)

func TestGetCustomerCompleteConfiguration(t *testing.T) {
	ctx := context.Background()

	t.Run("returns exactly one entry per well-known field in fixed order", func(t *testing.T) {
		aggregator := NewAggregatorService(newTestResolver(newFakeConfigRepo(), newFakeOptionRepo()))

		reports, err := aggregator.GetCustomerCompleteConfiguration(ctx, "t1", "c1")
		require.NoError(t, err)
		require.Len(t, reports, len(WellKnownFields))
		for i, fieldName := range WellKnownFields {
			assert.Equal(t, fieldName, reports[i].FieldName)
		}
	})
	t.Run("fields without any layer report none", func(t *testing.T) {
		aggregator := NewAggregatorService(newTestResolver(newFakeConfigRepo(), newFakeOptionRepo()))

		reports, err := aggregator.GetCustomerCompleteConfiguration(ctx, "t1", "c1")
		require.NoError(t, err)

		byField := map[string]FieldReport{}
		for _, report := range reports {
			byField[report.FieldName] = report
		}
		// category has no system default
		category := byField["category"]
		assert.Nil(t, category.Configuration)
		assert.Empty(t, category.Options)
		assert.Equal(t, domain.SourceNone, category.Inheritance.ConfigSource)
		assert.Equal(t, domain.SourceNone, category.Inheritance.OptionsSource)
		// priority and status fall back to the system layer
		assert.Equal(t, domain.SourceSystem, byField["priority"].Inheritance.ConfigSource)
		assert.Equal(t, domain.SourceSystem, byField["status"].Inheritance.OptionsSource)
	})
	t.Run("customer override is flagged only on its field", func(t *testing.T) {
		customerID := "c1"
		configs := newFakeConfigRepo()
		configs.put(domain.CustomerScope("t1", "c1"), domain.FieldConfiguration{
			ID:          "cfg-status",
			TenantID:    "t1",
			CustomerID:  &customerID,
			FieldName:   "status",
			DisplayName: "Estado",
			IsActive:    true,
		})
		options := newFakeOptionRepo()
		options.put(domain.CustomerScope("t1", "c1"), "status", []domain.FieldOption{
			{ID: "opt-1", OptionValue: "todo", SortOrder: 1},
		})
		aggregator := NewAggregatorService(newTestResolver(configs, options))

		reports, err := aggregator.GetCustomerCompleteConfiguration(ctx, "t1", "c1")
		require.NoError(t, err)
		for _, report := range reports {
			if report.FieldName == "status" {
				assert.True(t, report.Inheritance.HasCustomerOverride)
				assert.True(t, report.Inheritance.HasCustomerOptions)
				continue
			}
			assert.False(t, report.Inheritance.HasCustomerOverride, report.FieldName)
			assert.False(t, report.Inheritance.HasCustomerOptions, report.FieldName)
		}
	})
	t.Run("store failure on any field fails the report", func(t *testing.T) {
		configs := newFakeConfigRepo()
		configs.err = errors.New("store unavailable")
		aggregator := NewAggregatorService(newTestResolver(configs, newFakeOptionRepo()))

		reports, err := aggregator.GetCustomerCompleteConfiguration(ctx, "t1", "c1")
		assert.Nil(t, reports)
		assert.Error(t, err)
	})
}

func TestResolveFieldReport(t *testing.T) {
	ctx := context.Background()

	t.Run("config and options may come from different layers", func(t *testing.T) {
		configs := newFakeConfigRepo()
		configs.put(domain.TenantScope("t1"), tenantPriorityConfig())
		options := newFakeOptionRepo()
		options.put(domain.CustomerScope("t1", "c1"), "priority", []domain.FieldOption{
			{ID: "opt-1", OptionValue: "p1", SortOrder: 1},
		})
		aggregator := NewAggregatorService(newTestResolver(configs, options))

		report, err := aggregator.ResolveField(ctx, domain.CustomerScope("t1", "c1"), "priority")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceTenant, report.Inheritance.ConfigSource)
		assert.Equal(t, domain.SourceCustomer, report.Inheritance.OptionsSource)
		assert.False(t, report.Inheritance.HasCustomerOverride)
		assert.True(t, report.Inheritance.HasCustomerOptions)
	})
	t.Run("tenant scope report never reports customer sources", func(t *testing.T) {
		configs := newFakeConfigRepo()
		configs.put(domain.CustomerScope("t1", "c1"), customerPriorityConfig())
		aggregator := NewAggregatorService(newTestResolver(configs, newFakeOptionRepo()))

		report, err := aggregator.ResolveField(ctx, domain.TenantScope("t1"), "priority")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceSystem, report.Inheritance.ConfigSource)
		assert.False(t, report.Inheritance.HasCustomerOverride)
	})
}
