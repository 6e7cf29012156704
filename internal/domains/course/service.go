package course

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business operations for courses.
type Service interface {
	// List returns all courses of an author.
	// Errors: ErrAuthorNotFound.
	List(ctx context.Context, authorID uuid.UUID) ([]Course, error)

	// Get returns one course.
	// Errors: ErrAuthorNotFound, ErrCourseNotFound.
	Get(ctx context.Context, authorID, courseID uuid.UUID) (*Course, error)

	// Create adds a course for the author.
	// Errors: ErrAuthorNotFound, validation errors.
	Create(ctx context.Context, authorID uuid.UUID, req *CreateCourseRequest) (*Course, error)

	// Upsert replaces the course, or creates it under the supplied id
	// when it does not exist yet. created=true on the insert path.
	// Errors: ErrAuthorNotFound, validation errors.
	Upsert(ctx context.Context, authorID, courseID uuid.UUID, req *UpdateCourseRequest) (c *Course, created bool, err error)

	// Patch merges the request into the stored course and validates
	// the result. An unknown id upserts: the patch is applied to an
	// empty course and created under the supplied id.
	// Errors: ErrAuthorNotFound, validation errors on the merged state.
	Patch(ctx context.Context, authorID, courseID uuid.UUID, req *PatchCourseRequest) (c *Course, created bool, err error)

	// Delete removes the course.
	// Errors: ErrAuthorNotFound, ErrCourseNotFound.
	Delete(ctx context.Context, authorID, courseID uuid.UUID) error
}
