package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

type CourseService struct {
	repo   ports.CourseRepository
	cache  ports.CourseCache
	logger zerolog.Logger
}

// NewCourseService returns a CourseService. cache may be nil.
func NewCourseService(repo ports.CourseRepository, cache ports.CourseCache, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, cache: cache, logger: logger}
}

// List returns every course, reading through the cache when one is set.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	var (
		gen       int64
		writeBack bool
	)
	if s.cache != nil {
		cached, g, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Msg("course cache read failed, falling back to store")
		case ok:
			return cached, nil
		default:
			gen, writeBack = g, true
		}
	}

	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Persistence("listing courses", err)
	}
	if courses == nil {
		courses = []domain.Course{}
	}

	if writeBack {
		if err := s.cache.Set(ctx, gen, courses); err != nil {
			s.logger.Warn().Err(err).Msg("course cache write failed")
		}
	}
	return courses, nil
}

// Search filters the catalog with domain.Course.Matches.
func (s *CourseService) Search(ctx context.Context, query string) ([]domain.Course, error) {
	courses, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		if c.Matches(query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (s *CourseService) Create(ctx context.Context, in ports.CreateCourseInput) (*domain.Course, error) {
	if in.Code == nil {
		return nil, domain.Invalid("Course code is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.Invalid("Course title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.Invalid("Course description is required")
	}

	code := *in.Code
	if _, err := s.repo.FindByCode(ctx, code); err == nil {
		return nil, courseExists(code)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Persistence("adding course", err)
	}

	created, err := s.repo.Create(ctx, &domain.Course{
		Code:        code,
		Title:       in.Title,
		Description: in.Description,
		Provider:    in.Provider,
		Image:       in.Image,
		Duration:    in.Duration,
		CourseURL:   in.CourseURL,
		Tags:        in.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCourseExists) {
			return nil, courseExists(code)
		}
		return nil, domain.Persistence("adding course", err)
	}

	s.invalidate(ctx)
	s.logger.Info().Str("course_id", created.ID).Int("code", created.Code).Msg("course created")
	return created, nil
}

func (s *CourseService) Update(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("updating course", err)
	}

	patch.Apply(course)
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, domain.Persistence("updating course", err)
	}

	s.invalidate(ctx)
	s.logger.Info().Str("course_id", course.ID).Msg("course updated")
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.Persistence("deleting course", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return domain.Persistence("deleting course", err)
	}

	s.invalidate(ctx)
	s.logger.Info().Str("course_id", id).Msg("course deleted")
	return nil
}

func (s *CourseService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("course cache invalidation failed")
	}
}

func courseExists(code int) error {
	return &domain.KindError{Kind: domain.ErrConflict, Msg: fmt.Sprintf("Course code %d already exists", code)}
}
