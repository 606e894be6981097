package entity

import "github.com/google/uuid"

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// Scope narrows data access for a request.
// OwnerID is nil only for an admin that did not ask for a specific owner.
type Scope struct {
	ActorID uuid.UUID
	Role    Role
	OwnerID *uuid.UUID
}

// NewScope resolves the owner filter for an identity. Non-admins are pinned
// to their own id whatever they request.
func NewScope(identity Identity, requestedOwner *uuid.UUID) Scope {
	scope := Scope{
		ActorID: identity.UserID,
		Role:    identity.Role,
	}

	if identity.Role.BypassesOwnership() {
		scope.OwnerID = requestedOwner
		return scope
	}

	owner := identity.UserID
	scope.OwnerID = &owner
	return scope
}

// Unrestricted reports whether the scope spans every owner.
func (s Scope) Unrestricted() bool {
	return s.OwnerID == nil
}

// Owner returns the single owner the scope resolves to. An unrestricted
// scope resolves to the actor.
func (s Scope) Owner() uuid.UUID {
	if s.OwnerID != nil {
		return *s.OwnerID
	}
	return s.ActorID
}

// Filter returns the owner filter for repository queries (nil = all owners).
func (s Scope) Filter() *uuid.UUID {
	return s.OwnerID
}
