package ports

import (
	"context"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// FindByEmail looks up a user by canonical email. Returns
	// domain.ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a user and returns it with its ID set. A duplicate email
	// rejected by the store is reported as domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, password string) error
}
