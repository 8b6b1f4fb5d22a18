package ports

import (
	"context"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

// FavouriteRepository persists (user, course code) pairs.
type FavouriteRepository interface {
	// ListByUser returns the user's favourites in creation order.
	ListByUser(ctx context.Context, userID string) ([]domain.Favourite, error)
	// Find returns domain.ErrFavouriteNotFound when the pair does not exist.
	Find(ctx context.Context, userID string, code int) (*domain.Favourite, error)
	// Create returns domain.ErrFavouriteExists when the pair already exists.
	Create(ctx context.Context, fav *domain.Favourite) error
	Delete(ctx context.Context, id string) error
}
