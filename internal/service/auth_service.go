package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-config-service/internal/auth"
	"github.com/spec-kit/helpdesk-config-service/internal/config"
	"github.com/spec-kit/helpdesk-config-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-config-service/pkg/util"
)

// AuthService exchanges tenant API keys for access tokens.
type AuthService struct {
	tenants  repository.TenantRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, tenants repository.TenantRepository) *AuthService {
	return &AuthService{
		tenants:  tenants,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// ExchangeAPIKey verifies a tenant API key and issues a bearer token. All
// failure modes collapse into the same unauthorized error so the endpoint
// does not leak which tenants exist.
func (s *AuthService) ExchangeAPIKey(ctx context.Context, tenantSlug, apiKey string) (string, time.Time, error) {
	tenant, err := s.tenants.GetBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("invalid tenant credentials")
		}
		return "", time.Time{}, err
	}
	if !tenant.IsActive {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid tenant credentials")
	}
	if err := auth.CompareAPIKey(tenant.APIKeyHash, apiKey); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid tenant credentials")
	}
	return s.tokenMgr.GenerateToken(tenant.ID)
}
