package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-config-service/internal/cache"
	"github.com/spec-kit/helpdesk-config-service/internal/domain"
	"github.com/spec-kit/helpdesk-config-service/internal/events"
)

// StartCacheInvalidator subscribes the resolution cache to configuration
// write events so a new customer override becomes visible immediately instead
// of waiting out the cache TTL.
func StartCacheInvalidator(dispatcher events.Dispatcher, resolutionCache *cache.ResolutionCache, logger *zap.Logger) {
	if dispatcher == nil || resolutionCache == nil {
		return
	}
	dispatcher.Subscribe(events.EventFieldConfigurationCreated, func(ctx context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.FieldConfigurationCreatedPayload)
		if !ok {
			logger.Warn("unexpected payload on configuration created event", zap.String("event_id", event.ID))
			return nil
		}
		scope := domain.CustomerScope(event.TenantID, payload.CustomerID)
		resolutionCache.Invalidate(ctx, scope, payload.FieldName)
		return nil
	})
}
