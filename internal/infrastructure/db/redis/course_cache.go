package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

const (
	courseListPrefix = "courses:all:"
	courseGenKey     = "courses:gen"
	defaultCacheTTL  = 5 * time.Minute
)

// CourseCache keeps the full course list under a key derived from a
// generation counter. Invalidate increments the counter; lists written under
// an older generation are never read again and expire with the TTL.
type CourseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCourseCache(client *redis.Client, ttl time.Duration) *CourseCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CourseCache{client: client, ttl: ttl}
}

func listKey(gen int64) string {
	return courseListPrefix + strconv.FormatInt(gen, 10)
}

// generation reads the counter. A missing counter is generation 0.
func (c *CourseCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, courseGenKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("course cache generation: %w", err)
	}
	return gen, nil
}

// Get returns ok=false on a miss.
func (c *CourseCache) Get(ctx context.Context) ([]domain.Course, int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	key := listKey(gen)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gen, false, nil
		}
		return nil, gen, false, fmt.Errorf("course cache get: %w", err)
	}

	courses, err := decodeCourses(raw)
	if err != nil {
		// Drop the unreadable entry so the next read repopulates it.
		_ = c.client.Del(ctx, key).Err()
		return nil, gen, false, err
	}
	return courses, gen, true, nil
}

func (c *CourseCache) Set(ctx context.Context, gen int64, courses []domain.Course) error {
	raw, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("course cache encode: %w", err)
	}
	if err := c.client.Set(ctx, listKey(gen), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("course cache set: %w", err)
	}
	return nil
}

func (c *CourseCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, courseGenKey).Err(); err != nil {
		return fmt.Errorf("course cache invalidate: %w", err)
	}
	return nil
}

func decodeCourses(raw []byte) ([]domain.Course, error) {
	courses := []domain.Course{}
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("course cache decode: %w", err)
	}
	return courses, nil
}
