package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-config-service/internal/domain"
)

// ResolutionCache is a read-through cache for resolved configurations and
// option sets, keyed by scope and field name. It is strictly best-effort:
// lookup and write failures degrade to cache misses, and it is never used to
// answer a request when the store itself is failing. A nil *ResolutionCache
// is valid and disables caching.
type ResolutionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewResolutionCache wraps a redis client with the given entry TTL.
func NewResolutionCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ResolutionCache {
	return &ResolutionCache{client: client, ttl: ttl, logger: logger}
}

// GetConfiguration returns a cached resolved configuration when present.
func (c *ResolutionCache) GetConfiguration(ctx context.Context, scope domain.Scope, fieldName string) (*domain.FieldConfiguration, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, configurationKey(scope, fieldName)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("resolution cache get failed", zap.String("scope", scope.String()), zap.Error(err))
		}
		return nil, false
	}
	var cfg domain.FieldConfiguration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		c.logger.Warn("resolution cache entry corrupt", zap.String("scope", scope.String()), zap.Error(err))
		return nil, false
	}
	return &cfg, true
}

// SetConfiguration stores a resolved configuration.
func (c *ResolutionCache) SetConfiguration(ctx context.Context, scope domain.Scope, fieldName string, cfg *domain.FieldConfiguration) {
	if c == nil || c.client == nil || cfg == nil {
		return
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, configurationKey(scope, fieldName), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("resolution cache set failed", zap.String("scope", scope.String()), zap.Error(err))
	}
}

// GetOptions returns a cached resolved option set when present.
func (c *ResolutionCache) GetOptions(ctx context.Context, scope domain.Scope, fieldName string) ([]domain.FieldOption, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, optionsKey(scope, fieldName)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("resolution cache get failed", zap.String("scope", scope.String()), zap.Error(err))
		}
		return nil, false
	}
	var options []domain.FieldOption
	if err := json.Unmarshal(raw, &options); err != nil {
		c.logger.Warn("resolution cache entry corrupt", zap.String("scope", scope.String()), zap.Error(err))
		return nil, false
	}
	return options, true
}

// SetOptions stores a resolved option set. Empty sets are not cached so a
// later write becomes visible immediately.
func (c *ResolutionCache) SetOptions(ctx context.Context, scope domain.Scope, fieldName string, options []domain.FieldOption) {
	if c == nil || c.client == nil || len(options) == 0 {
		return
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, optionsKey(scope, fieldName), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("resolution cache set failed", zap.String("scope", scope.String()), zap.Error(err))
	}
}

// Invalidate drops both cached entries for a scope and field.
func (c *ResolutionCache) Invalidate(ctx context.Context, scope domain.Scope, fieldName string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, configurationKey(scope, fieldName), optionsKey(scope, fieldName)).Err(); err != nil {
		c.logger.Warn("resolution cache invalidate failed", zap.String("scope", scope.String()), zap.Error(err))
	}
}

func configurationKey(scope domain.Scope, fieldName string) string {
	return fmt.Sprintf("fieldcfg:cfg:%s:%s", scopeKey(scope), fieldName)
}

func optionsKey(scope domain.Scope, fieldName string) string {
	return fmt.Sprintf("fieldcfg:opts:%s:%s", scopeKey(scope), fieldName)
}

func scopeKey(scope domain.Scope) string {
	if customerID, ok := scope.CustomerID(); ok {
		return scope.TenantID() + ":" + customerID
	}
	return scope.TenantID() + ":-"
}
