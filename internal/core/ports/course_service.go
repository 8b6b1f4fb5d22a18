package ports

import (
	"context"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

// CreateCourseInput is an admin's new course. Code is a pointer so a missing
// code can be told apart from code 0.
type CreateCourseInput struct {
	Code        *int
	Title       string
	Description string
	Provider    string
	Image       string
	Duration    int
	CourseURL   string
	Tags        []string
}

// CourseService defines catalog use cases.
type CourseService interface {
	List(ctx context.Context) ([]domain.Course, error)
	Search(ctx context.Context, query string) ([]domain.Course, error)
	Create(ctx context.Context, in CreateCourseInput) (*domain.Course, error)
	Update(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

// FavouriteService defines per-user favourite use cases.
type FavouriteService interface {
	List(ctx context.Context, user *domain.User) ([]domain.Course, error)
	Add(ctx context.Context, user *domain.User, code int) error
	Remove(ctx context.Context, user *domain.User, code int) error
}
