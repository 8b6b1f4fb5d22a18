package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

// Gateway turns request credentials into users and role decisions.
type Gateway struct {
	tokens *TokenService
	users  ports.UserRepository
}

func NewGateway(tokens *TokenService, users ports.UserRepository) *Gateway {
	return &Gateway{tokens: tokens, users: users}
}

// Authenticate returns the email embedded in a valid bearer token.
func (g *Gateway) Authenticate(authHeader string) (string, bool) {
	return g.tokens.Verify(authHeader)
}

// RequireRole checks the role stored for the caller, not the role claim in
// the token, so demotions take effect before the token expires.
func (g *Gateway) RequireRole(ctx context.Context, authHeader string, role domain.Role) (*domain.User, error) {
	email, ok := g.Authenticate(authHeader)
	if !ok {
		return nil, domain.ErrForbidden
	}

	user, err := g.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, domain.Persistence("loading user", err)
	}

	if !domain.Authorize(user, role) {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

func (g *Gateway) ResolveUser(ctx context.Context, authHeader, fallbackEmail string) (*domain.User, error) {
	email, ok := g.Authenticate(authHeader)
	if !ok {
		email = domain.CanonicalEmail(fallbackEmail)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: user not found", domain.ErrUnauthenticated)
	}

	user, err := g.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", domain.ErrUnauthenticated)
		}
		return nil, domain.Persistence("loading user", err)
	}
	return user, nil
}
