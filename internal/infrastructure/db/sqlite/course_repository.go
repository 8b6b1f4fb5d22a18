package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/db/tags"
)

const courseColumns = `id, code, title, description, provider, image, duration, courseurl, tags`

type CourseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (domain.Course, error) {
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

	rows, err := r.db.QueryContext(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	courses := []domain.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return r.findOne(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = ?`, n)
}

func (r *CourseRepository) FindByCode(ctx context.Context, code int) (*domain.Course, error) {
	return r.findOne(ctx, `SELECT `+courseColumns+` FROM courses WHERE code = ?`, code)
}

func (r *CourseRepository) findOne(ctx context.Context, query string, arg any) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c, err := scanCourse(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &c, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO courses (code, title, description, provider, image, duration, courseurl, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		course.Code, course.Title, course.Description, course.Provider, course.Image,
		course.Duration, course.CourseURL, tags.Join(course.Tags),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCourseExists
		}
		return nil, fmt.Errorf("insert course: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	created := *course
	created.ID = formatID(id)
	created.Tags = tags.Split(tags.Join(course.Tags))
	return &created, nil
}

func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	id, ok := parseID(course.ID)
	if !ok {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE courses SET code = ?, title = ?, description = ?, provider = ?, image = ?,
		 duration = ?, courseurl = ?, tags = ? WHERE id = ?`,
		course.Code, course.Title, course.Description, course.Provider, course.Image,
		course.Duration, course.CourseURL, tags.Join(course.Tags), id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCourseExists
		}
		return fmt.Errorf("update course: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
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

	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, n)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}
