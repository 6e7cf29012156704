package author

import (
	"context"

	"github.com/google/uuid"

	"courselibrary-backend/internal/shared/pagination"
)

// Repository defines data access for authors.
type Repository interface {
	// Create inserts an author and any inline courses in one
	// transaction.
	Create(ctx context.Context, a *Author) (*Author, error)

	// CreateMany inserts a batch of authors (author-collections
	// endpoint). All-or-nothing.
	CreateMany(ctx context.Context, authors []*Author) ([]Author, error)

	// GetByID retrieves one author.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetByIDs retrieves the listed authors. Returns
	// ErrAuthorNotFound if any id is missing.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Author, error)

	// GetPage returns one page of authors matching the filter,
	// ordered by the filter's translated order-by expression.
	GetPage(ctx context.Context, filter AuthorFilter, page pagination.PageRequest) (*pagination.PagedList[Author], error)

	// Exists reports whether the author exists without loading it.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Delete removes the author; courses go with it.
	// Errors: ErrAuthorNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
