package ports

import (
	"context"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

// RegisterInput carries the raw registration fields as received.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned by a successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
	// CredentialUpgraded is true when a legacy plaintext password was
	// re-hashed during this login.
	CredentialUpgraded bool
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// Gateway resolves callers from request credentials.
type Gateway interface {
	// RequireRole returns the caller when it holds role, domain.ErrForbidden
	// otherwise, including when the caller cannot be identified.
	RequireRole(ctx context.Context, authHeader string, role domain.Role) (*domain.User, error)
	// ResolveUser identifies the caller from the Authorization header, falling
	// back to fallbackEmail. Returns domain.ErrUnauthenticated when neither
	// names a known user.
	ResolveUser(ctx context.Context, authHeader, fallbackEmail string) (*domain.User, error)
}
