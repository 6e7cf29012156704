package course

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for courses. All operations are
// scoped to an author; a course id from another author is treated as
// not found.
type Repository interface {
	// GetByAuthor returns every course owned by the author, ordered
	// by title.
	GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]Course, error)

	// GetByID returns one course of the author.
	// Errors: ErrCourseNotFound.
	GetByID(ctx context.Context, authorID, courseID uuid.UUID) (*Course, error)

	// Create inserts a course. A zero ID is generated server-side;
	// a client-supplied ID is preserved (upsert creation path).
	Create(ctx context.Context, c *Course) (*Course, error)

	// Update replaces title and description.
	// Errors: ErrCourseNotFound.
	Update(ctx context.Context, c *Course) (*Course, error)

	// Delete removes the course.
	// Errors: ErrCourseNotFound.
	Delete(ctx context.Context, authorID, courseID uuid.UUID) error
}

// AuthorChecker is the slice of the author repository this domain
// needs: existence checks before touching an author's courses.
type AuthorChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
