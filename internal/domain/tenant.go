package domain

import "time"

// Tenant is a top-level isolated organization. API keys are stored hashed;
// the plaintext only travels on the token-exchange request.
type Tenant struct {
	ID         string
	Slug       string
	Name       string
	APIKeyHash string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
