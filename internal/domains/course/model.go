package course

import (
	"time"

	"github.com/google/uuid"
)

// Course is a course taught by an author. It exists only in the
// context of its author: deleting the author removes its courses.
type Course struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`

	// Owning author. Immutable after creation.
	AuthorID uuid.UUID `json:"author_id" db:"author_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
