package dto

import "time"

// TokenRequest exchanges a tenant API key for a bearer token.
type TokenRequest struct {
	TenantSlug string `json:"tenant_slug"`
	APIKey     string `json:"api_key"`
}

// TokenResponse carries the issued token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
