package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/db/tags"
)

const courseColumns = `id, code, title, description, provider, image, duration, courseurl, tags`

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func scanCourse(row pgx.Row) (domain.Course, error) {
	var (
		c      domain.Course
		id     int64
		stored string
	)
	if err := row.Scan(&id, &c.Code, &c.Title, &c.Description, &c.Provider, &c.Image, &c.Duration, &c.CourseURL, &stored); err != nil {
		return domain.Course{}, err
	}
	c.ID = formatID(id)
	c.Tags = tags.Split(stored)
	return c, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating course rows: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return r.findOne(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, n)
}

func (r *CourseRepository) FindByCode(ctx context.Context, code int) (*domain.Course, error) {
	return r.findOne(ctx, `SELECT `+courseColumns+` FROM courses WHERE code = $1`, code)
}

func (r *CourseRepository) findOne(ctx context.Context, query string, arg any) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c, err := scanCourse(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &c, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		INSERT INTO courses (code, title, description, provider, image, duration, courseurl, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + courseColumns
	created, err := scanCourse(r.pool.QueryRow(ctx, query,
		course.Code, course.Title, course.Description, course.Provider, course.Image,
		course.Duration, course.CourseURL, tags.Join(course.Tags),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCourseExists
		}
		return nil, fmt.Errorf("creating course: %w", err)
	}
	return &created, nil
}

func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	id, ok := parseID(course.ID)
	if !ok {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		UPDATE courses
		SET code = $1, title = $2, description = $3, provider = $4, image = $5,
		    duration = $6, courseurl = $7, tags = $8
		WHERE id = $9
	`
	tag, err := r.pool.Exec(ctx, query,
		course.Code, course.Title, course.Description, course.Provider, course.Image,
		course.Duration, course.CourseURL, tags.Join(course.Tags), id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCourseExists
		}
		return fmt.Errorf("updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	n, ok := parseID(id)
	if !ok {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, n)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}
