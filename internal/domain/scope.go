package domain

import "fmt"

// ScopeKind discriminates the three configuration layers.
type ScopeKind string

const (
	ScopeKindCustomer ScopeKind = "customer"
	ScopeKindTenant   ScopeKind = "tenant"
	ScopeKindSystem   ScopeKind = "system"
)

// Scope identifies a configuration layer. It replaces the nullable
// customer-id column as the layer discriminator: a scope is always one of
// customer, tenant, or system, and the fallback chain is derived from it.
type Scope struct {
	kind       ScopeKind
	tenantID   string
	customerID string
}

// CustomerScope addresses customer-specific overrides under a tenant.
func CustomerScope(tenantID, customerID string) Scope {
	return Scope{kind: ScopeKindCustomer, tenantID: tenantID, customerID: customerID}
}

// TenantScope addresses tenant-wide defaults.
func TenantScope(tenantID string) Scope {
	return Scope{kind: ScopeKindTenant, tenantID: tenantID}
}

// SystemScope addresses the compiled-in fallback layer.
func SystemScope() Scope {
	return Scope{kind: ScopeKindSystem}
}

// Kind returns the layer this scope addresses.
func (s Scope) Kind() ScopeKind {
	return s.kind
}

// TenantID returns the owning tenant; empty for the system scope.
func (s Scope) TenantID() string {
	return s.tenantID
}

// CustomerID returns the owning customer and whether the scope carries one.
func (s Scope) CustomerID() (string, bool) {
	if s.kind != ScopeKindCustomer {
		return "", false
	}
	return s.customerID, true
}

// Chain returns the fallback chain starting at this scope, ordered from most
// to least specific. Resolution walks it in order and stops at the first hit.
func (s Scope) Chain() []Scope {
	switch s.kind {
	case ScopeKindCustomer:
		return []Scope{s, TenantScope(s.tenantID), SystemScope()}
	case ScopeKindTenant:
		return []Scope{s, SystemScope()}
	default:
		return []Scope{SystemScope()}
	}
}

// Source returns the provenance tag for values resolved at this scope.
func (s Scope) Source() ConfigSource {
	switch s.kind {
	case ScopeKindCustomer:
		return SourceCustomer
	case ScopeKindTenant:
		return SourceTenant
	default:
		return SourceSystem
	}
}

func (s Scope) String() string {
	switch s.kind {
	case ScopeKindCustomer:
		return fmt.Sprintf("customer(%s/%s)", s.tenantID, s.customerID)
	case ScopeKindTenant:
		return fmt.Sprintf("tenant(%s)", s.tenantID)
	default:
		return "system"
	}
}
