package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfiguration(t *testing.T) {
	p := NewProvider()

	t.Run("priority", func(t *testing.T) {
		cfg := p.GetDefaultConfiguration("priority")
		require.NotNil(t, cfg)
		assert.Equal(t, "system-priority", cfg.ID)
		assert.Equal(t, "Prioridade", cfg.DisplayName)
		assert.Equal(t, "select", cfg.FieldType)
		assert.True(t, cfg.IsSystemField)
		assert.True(t, cfg.IsActive)
	})
	t.Run("status", func(t *testing.T) {
		cfg := p.GetDefaultConfiguration("status")
		require.NotNil(t, cfg)
		assert.Equal(t, "system-status", cfg.ID)
		assert.Equal(t, "Status", cfg.DisplayName)
	})
	t.Run("unknown field yields nil, not an error", func(t *testing.T) {
		assert.Nil(t, p.GetDefaultConfiguration("nonexistent_field"))
		assert.Nil(t, p.GetDefaultConfiguration("category"))
	})
	t.Run("returned value is a copy", func(t *testing.T) {
		first := p.GetDefaultConfiguration("priority")
		first.DisplayName = "mutated"
		second := p.GetDefaultConfiguration("priority")
		assert.Equal(t, "Prioridade", second.DisplayName)
	})
}

func TestGetDefaultOptions(t *testing.T) {
	p := NewProvider()

	t.Run("priority has four ordered options with medium default", func(t *testing.T) {
		options := p.GetDefaultOptions("priority")
		require.Len(t, options, 4)
		values := make([]string, 0, len(options))
		for i, opt := range options {
			values = append(values, opt.OptionValue)
			assert.Equal(t, i+1, opt.SortOrder)
			assert.True(t, opt.IsActive)
			assert.NotEmpty(t, opt.ColorHex)
		}
		assert.Equal(t, []string{"low", "medium", "high", "critical"}, values)
		assert.True(t, options[1].IsDefault)
		assert.False(t, options[0].IsDefault)
	})
	t.Run("priority colors are distinct", func(t *testing.T) {
		options := p.GetDefaultOptions("priority")
		seen := map[string]bool{}
		for _, opt := range options {
			assert.False(t, seen[opt.ColorHex], "duplicate color %s", opt.ColorHex)
			seen[opt.ColorHex] = true
		}
	})
	t.Run("status has four options with open default", func(t *testing.T) {
		options := p.GetDefaultOptions("status")
		require.Len(t, options, 4)
		assert.Equal(t, "open", options[0].OptionValue)
		assert.True(t, options[0].IsDefault)
		assert.Equal(t, "closed", options[3].OptionValue)
	})
	t.Run("unknown field yields empty slice", func(t *testing.T) {
		options := p.GetDefaultOptions("nonexistent_field")
		require.NotNil(t, options)
		assert.Empty(t, options)
	})
	t.Run("returned slice is a copy", func(t *testing.T) {
		first := p.GetDefaultOptions("status")
		first[0].DisplayLabel = "mutated"
		second := p.GetDefaultOptions("status")
		assert.Equal(t, "Aberto", second[0].DisplayLabel)
	})
}
