package author

import (
	"time"

	"github.com/google/uuid"

	"courselibrary-backend/internal/domains/course"
)

// Author is the owning side of the author/course composition.
// Deleting an author removes its courses (FK cascade, mirrored by an
// explicit delete in the repository).
type Author struct {
	ID uuid.UUID `json:"id" db:"id"`

	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`

	DateOfBirth time.Time  `json:"date_of_birth" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death" db:"date_of_death"`

	MainCategory string `json:"main_category" db:"main_category"`

	// Courses is populated only on the nested-creation path; reads
	// load courses through their own repository.
	Courses []course.Course `json:"courses,omitempty" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Name is the public display name.
func (a *Author) Name() string {
	return a.FirstName + " " + a.LastName
}

// Age in whole years at the date of death, or today for the living.
func (a *Author) Age() int {
	end := time.Now().UTC()
	if a.DateOfDeath != nil {
		end = *a.DateOfDeath
	}

	age := end.Year() - a.DateOfBirth.Year()
	// Not yet had the birthday this year.
	if end.Month() < a.DateOfBirth.Month() ||
		(end.Month() == a.DateOfBirth.Month() && end.Day() < a.DateOfBirth.Day()) {
		age--
	}
	return age
}
