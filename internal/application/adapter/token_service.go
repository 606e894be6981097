// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// TokenClaims represents the claims carried by a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.Role
	ExpiresAt time.Time
}

// Identity returns the request identity described by the claims.
func (c *TokenClaims) Identity() entity.Identity {
	return entity.Identity{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
	}
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue signs a token for the given identity.
	Issue(ctx context.Context, identity entity.Identity) (string, error)

	// Verify checks signature and expiry and returns the embedded claims.
	// Any failure is reported as domainerror.ErrInvalidToken.
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}
