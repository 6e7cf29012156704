package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"courselibrary-backend/internal/domains/course"
	"courselibrary-backend/pkg/cache"
)

// postgresRepository implements course.Repository on pgxpool with a
// read-through Redis cache for single-course lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) course.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	courseCacheKeyPrefix     = "course:"
	courseListCacheKeyPrefix = "courses:author:"
	cacheTTL                 = 15 * time.Minute
)

func courseCacheKey(courseID uuid.UUID) string {
	return courseCacheKeyPrefix + courseID.String()
}

func courseListCacheKey(authorID uuid.UUID) string {
	return courseListCacheKeyPrefix + authorID.String()
}

func (r *postgresRepository) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]course.Course, error) {
	cacheKey := courseListCacheKey(authorID)

	var cached []course.Course
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
        SELECT id, title, description, author_id, created_at, updated_at
        FROM courses
        WHERE author_id = $1
        ORDER BY title
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := []course.Course{}
	for rows.Next() {
		var c course.Course
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.AuthorID,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read courses: %w", err)
	}

	r.cache.Set(ctx, cacheKey, courses, cacheTTL)

	return courses, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, authorID, courseID uuid.UUID) (*course.Course, error) {
	cacheKey := courseCacheKey(courseID)

	var c course.Course
	if found, err := r.cache.Get(ctx, cacheKey, &c); err == nil && found && c.AuthorID == authorID {
		return &c, nil
	}

	query := `
        SELECT id, title, description, author_id, created_at, updated_at
        FROM courses
        WHERE id = $1 AND author_id = $2
    `

	err := r.pool.QueryRow(ctx, query, courseID, authorID).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.AuthorID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, course.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	r.cache.Set(ctx, cacheKey, c, cacheTTL)

	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *course.Course) (*course.Course, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query := `
        INSERT INTO courses (id, title, description, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, description, author_id, created_at, updated_at
    `

	var created course.Course
	err := r.pool.QueryRow(ctx, query, c.ID, c.Title, c.Description, c.AuthorID).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.AuthorID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	r.cache.Delete(ctx, courseListCacheKey(c.AuthorID))

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *course.Course) (*course.Course, error) {
	query := `
        UPDATE courses
        SET title = $1, description = $2, updated_at = NOW()
        WHERE id = $3 AND author_id = $4
        RETURNING id, title, description, author_id, created_at, updated_at
    `

	var updated course.Course
	err := r.pool.QueryRow(ctx, query, c.Title, c.Description, c.ID, c.AuthorID).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Description,
		&updated.AuthorID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, course.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	r.cache.Delete(ctx, courseCacheKey(c.ID), courseListCacheKey(c.AuthorID))

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, authorID, courseID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM courses WHERE id = $1 AND author_id = $2`,
		courseID, authorID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return course.ErrCourseNotFound
	}

	r.cache.Delete(ctx, courseCacheKey(courseID), courseListCacheKey(authorID))

	return nil
}
