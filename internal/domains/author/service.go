package author

import (
	"context"

	"github.com/google/uuid"

	"courselibrary-backend/internal/shared/pagination"
)

// Service defines the business operations for authors.
type Service interface {
	// Create validates the request and stores the author together
	// with any inline courses.
	// Errors: validation errors.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// CreateMany validates and stores a batch of authors.
	// Errors: validation errors (first failing element wins).
	CreateMany(ctx context.Context, reqs []CreateAuthorRequest) ([]Author, error)

	// GetByID retrieves one author.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetByIDs retrieves a collection; any missing id fails the
	// whole lookup.
	// Errors: ErrAuthorNotFound.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Author, error)

	// GetPage returns one page of authors. The order-by expression
	// must have been validated by the caller against the mapping
	// registry.
	GetPage(ctx context.Context, filter AuthorFilter, page pagination.PageRequest) (*pagination.PagedList[Author], error)

	// Delete removes the author and, by cascade, its courses.
	// Errors: ErrAuthorNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
