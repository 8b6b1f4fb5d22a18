package ports

import (
	"context"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

// CourseRepository persists catalog entries.
type CourseRepository interface {
	List(ctx context.Context) ([]domain.Course, error)
	// FindByID returns domain.ErrCourseNotFound for unknown or malformed IDs.
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	FindByCode(ctx context.Context, code int) (*domain.Course, error)
	// Create returns domain.ErrCourseExists when the code is already taken.
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id string) error
}

// CourseCache holds the full course list between catalog mutations.
//
// Entries are tagged with a generation. Invalidate starts a new generation, so
// a list read from the store before a mutation and written afterwards under
// the old generation is never served.
type CourseCache interface {
	// Get returns the current generation and, on a hit, its list. It reports
	// ok=false on a miss.
	Get(ctx context.Context) (courses []domain.Course, gen int64, ok bool, err error)
	// Set stores courses under gen, the generation Get reported before the
	// store was read.
	Set(ctx context.Context, gen int64, courses []domain.Course) error
	Invalidate(ctx context.Context) error
}
