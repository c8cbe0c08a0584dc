package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-config-service/internal/domain"
	"github.com/spec-kit/helpdesk-config-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-config-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the resolved tenant behind a request. Absence of tenant
// context is a hard precondition failure for every configuration operation.
type Principal struct {
	Tenant *domain.Tenant
}

// TenantMiddleware validates bearer tokens and loads the tenant principal.
type TenantMiddleware struct {
	tokens  *TokenManager
	tenants repository.TenantRepository
}

// NewTenantMiddleware constructs middleware.
func NewTenantMiddleware(tokens *TokenManager, tenants repository.TenantRepository) *TenantMiddleware {
	return &TenantMiddleware{tokens: tokens, tenants: tenants}
}

// Handle enforces tenant authentication for protected routes.
func (m *TenantMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	tenant, err := m.tenants.GetByID(c.Context(), claims.TenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("tenant not found")
		}
		return apperrors.MapError(err)
	}
	if !tenant.IsActive {
		return apperrors.NewUnauthorized("tenant inactive")
	}

	c.Locals(principalKey, &Principal{Tenant: tenant})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated tenant.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
