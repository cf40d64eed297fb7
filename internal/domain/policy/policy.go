// Package policy is the single source of truth for authorization decisions.
// Every rule about who may touch which stock-condition record, and what a
// listing may return, lives here; handlers and use cases never compare roles
// or owner ids themselves.
package policy

import (
	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"

	"github.com/google/uuid"
)

// Principal is the authenticated identity a request acts as. It is derived
// once from a validated token and passed explicitly into every decision;
// the policy never reaches into ambient request state.
type Principal struct {
	ID   uuid.UUID
	Role entity.Role
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == entity.RoleAdmin
}

// BulkOperation identifies an operation that targets no single record.
type BulkOperation string

const (
	// OpListAll lists every stock-condition record in the system.
	OpListAll BulkOperation = "list-all"
	// OpAggregate computes the cross-owner aggregate summary.
	OpAggregate BulkOperation = "aggregate"
	// OpProvisionUser creates a user with an explicit role.
	OpProvisionUser BulkOperation = "provision-user"
	// OpListUsers lists all users with their roles.
	OpListUsers BulkOperation = "list-users"
	// OpListRoles lists the closed role catalog.
	OpListRoles BulkOperation = "list-roles"
)

// AuthorizeRecord decides whether the principal may read, update or delete
// a single record owned by ownerID. Rules are evaluated in order, first
// match wins:
//
//  1. self-ownership: the owner may always operate on their own record,
//     regardless of role;
//  2. admin override: an admin may operate on any record;
//  3. default deny.
//
// A denial is reported as ErrStockNotFound rather than ErrForbidden so a
// non-owner, non-admin lookup is indistinguishable from the record not
// existing. Callers must not remap this to a 403.
func AuthorizeRecord(p Principal, ownerID uuid.UUID) error {
	if ownerID == p.ID {
		return nil
	}
	if p.IsAdmin() {
		return nil
	}

	return domainerrors.ErrStockNotFound
}

// Authorize decides whether the principal may perform a bulk operation.
// Bulk denials are an explicit forbidden outcome; there is no record whose
// existence could leak.
func Authorize(p Principal, op BulkOperation) error {
	if p.IsAdmin() {
		return nil
	}

	return domainerrors.ErrForbidden
}

// ListScope describes the row filter a listing operation must apply for
// the principal. A nil OwnerID means no owner filter (full set).
type ListScope struct {
	OwnerID *uuid.UUID
}

// ScopeFor returns the listing scope for the principal: farmers see only
// their own rows, admins see the full set. The accompanying response-shape
// divergence (admins receive an aggregate summary on the shared listing
// endpoint) is deliberate and decided by the use case from Aggregated.
func ScopeFor(p Principal) ListScope {
	if p.IsAdmin() {
		return ListScope{}
	}

	ownerID := p.ID

	return ListScope{OwnerID: &ownerID}
}

// Aggregated reports whether the shared listing endpoint answers the
// principal with an aggregate summary instead of a literal row listing.
func Aggregated(p Principal) bool {
	return p.IsAdmin()
}
