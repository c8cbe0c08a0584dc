package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-config-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-config-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-config-service/pkg/util"
)

// AuthHandler exposes tenant token exchange.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Token POST /auth/token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.TenantSlug) == "" || req.APIKey == "" {
		return apperrors.NewValidationError("tenant_slug and api_key required", nil)
	}

	token, expiresAt, err := h.service.ExchangeAPIKey(c.UserContext(), req.TenantSlug, req.APIKey)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}})
}
