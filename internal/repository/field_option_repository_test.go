package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-config-service/internal/domain"
	"github.com/spec-kit/helpdesk-config-service/internal/repository"
)

func optionRowDefinitions() []string {
	return []string{
		"id", "field_configuration_id", "tenant_id", "customer_id", "option_value",
		"display_label", "color_hex", "icon_name", "sort_order", "is_default", "is_active", "created_at",
	}
}

func TestFieldOptionRepository_ListActiveByScope(t *testing.T) {
	t.Run("customer scope returns ordered options", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := repository.NewFieldOptionRepository(mock)

		customerID := "c1"
		var noIcon *string
		now := time.Now()
		rows := mock.NewRows(optionRowDefinitions()).
			AddRow("opt-1", "cfg-1", "t1", &customerID, "p1", "Urgente", "#EF4444", noIcon, 1, true, true, now).
			AddRow("opt-2", "cfg-1", "t1", &customerID, "p2", "Normal", "#3B82F6", noIcon, 2, false, true, now)
		mock.ExpectQuery(`FROM field_options o\s+JOIN field_configurations c ON c\.id = o\.field_configuration_id\s+WHERE o\.tenant_id=\$1 AND o\.customer_id=\$2 AND c\.field_name=\$3`).
			WithArgs("t1", "c1", "priority").
			WillReturnRows(rows)

		options, err := repo.ListActiveByScope(context.Background(), domain.CustomerScope("t1", "c1"), "priority")
		require.NoError(t, err)
		require.Len(t, options, 2)
		assert.Equal(t, "p1", options[0].OptionValue)
		assert.True(t, options[0].IsDefault)
		assert.Equal(t, 2, options[1].SortOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("tenant scope filters on customer_id IS NULL", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := repository.NewFieldOptionRepository(mock)

		mock.ExpectQuery(`WHERE o\.tenant_id=\$1 AND o\.customer_id IS NULL AND c\.field_name=\$2`).
			WithArgs("t1", "priority").
			WillReturnRows(mock.NewRows(optionRowDefinitions()))

		options, err := repo.ListActiveByScope(context.Background(), domain.TenantScope("t1"), "priority")
		require.NoError(t, err)
		assert.Empty(t, options)
		assert.NotNil(t, options)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("store failure is propagated", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := repository.NewFieldOptionRepository(mock)

		storeErr := errors.New("timeout")
		mock.ExpectQuery(`FROM field_options o`).
			WithArgs("t1", "priority").
			WillReturnError(storeErr)

		options, err := repo.ListActiveByScope(context.Background(), domain.TenantScope("t1"), "priority")
		assert.Nil(t, options)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestFieldOptionRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewFieldOptionRepository(mock)

	customerID := "c1"
	option := &domain.FieldOption{
		FieldConfigurationID: "cfg-1",
		TenantID:             "t1",
		CustomerID:           &customerID,
		OptionValue:          "p1",
		DisplayLabel:         "Urgente",
		ColorHex:             "#EF4444",
		SortOrder:            1,
		IsDefault:            true,
		IsActive:             true,
	}
	mock.ExpectQuery(`INSERT INTO field_options`).
		WithArgs("cfg-1", "t1", &customerID, "p1", "Urgente", "#EF4444", option.IconName, 1, true, true).
		WillReturnRows(mock.NewRows([]string{"id", "created_at"}).AddRow("opt-9", time.Now()))

	require.NoError(t, repo.Create(context.Background(), option))
	assert.Equal(t, "opt-9", option.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
