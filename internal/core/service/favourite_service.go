package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

type FavouriteService struct {
	favourites ports.FavouriteRepository
	courses    ports.CourseRepository
	logger     zerolog.Logger
}

func NewFavouriteService(favourites ports.FavouriteRepository, courses ports.CourseRepository, logger zerolog.Logger) *FavouriteService {
	return &FavouriteService{favourites: favourites, courses: courses, logger: logger}
}

// List returns the courses the user has favourited. Favourites whose code no
// longer resolves to a course are skipped.
func (s *FavouriteService) List(ctx context.Context, user *domain.User) ([]domain.Course, error) {
	favs, err := s.favourites.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, domain.Persistence("listing favourites", err)
	}

	courses := make([]domain.Course, 0, len(favs))
	seen := make(map[int]struct{}, len(favs))
	for _, f := range favs {
		if _, dup := seen[f.Code]; dup {
			continue
		}
		seen[f.Code] = struct{}{}

		c, err := s.courses.FindByCode(ctx, f.Code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.logger.Debug().Str("user_id", user.ID).Int("code", f.Code).Msg("skipping dangling favourite")
				continue
			}
			return nil, domain.Persistence("listing favourites", err)
		}
		courses = append(courses, *c)
	}
	return courses, nil
}

// Add records a favourite. The code is not checked against the catalog.
func (s *FavouriteService) Add(ctx context.Context, user *domain.User, code int) error {
	if _, err := s.favourites.Find(ctx, user.ID, code); err == nil {
		return domain.ErrFavouriteExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Persistence("adding favourite", err)
	}

	fav := &domain.Favourite{UserID: user.ID, Code: code, CreatedAt: time.Now().UTC()}
	if err := s.favourites.Create(ctx, fav); err != nil {
		return domain.Persistence("adding favourite", err)
	}

	s.logger.Info().Str("user_id", user.ID).Int("code", code).Msg("favourite added")
	return nil
}

func (s *FavouriteService) Remove(ctx context.Context, user *domain.User, code int) error {
	fav, err := s.favourites.Find(ctx, user.ID, code)
	if err != nil {
		return domain.Persistence("removing favourite", err)
	}
	if err := s.favourites.Delete(ctx, fav.ID); err != nil {
		return domain.Persistence("removing favourite", err)
	}

	s.logger.Info().Str("user_id", user.ID).Int("code", code).Msg("favourite removed")
	return nil
}
