package author

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"courselibrary-backend/internal/domains/course"
)

const (
	MaxNameLength     = 50
	MaxCategoryLength = 50
)

// CreateAuthorRequest - POST /api/authors
// Courses may be supplied inline; they are created together with the
// author in one transaction.
type CreateAuthorRequest struct {
	FirstName    string                       `json:"firstName"`
	LastName     string                       `json:"lastName"`
	DateOfBirth  time.Time                    `json:"dateOfBirth"`
	DateOfDeath  *time.Time                   `json:"dateOfDeath,omitempty"`
	MainCategory string                       `json:"mainCategory"`
	Courses      []course.CreateCourseRequest `json:"courses,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.MainCategory,
			validation.Required.Error("main category is required"),
			validation.Length(1, MaxCategoryLength),
		),
		validation.Field(&r.DateOfBirth,
			validation.Required.Error("date of birth is required"),
		),
	)
	if err != nil {
		return err
	}

	if r.DateOfDeath != nil && !r.DateOfDeath.After(r.DateOfBirth) {
		return validation.Errors{
			"dateOfDeath": errors.New("date of death must be after the date of birth"),
		}
	}

	for _, c := range r.Courses {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToEntity maps the request onto a new Author.
func (r *CreateAuthorRequest) ToEntity() *Author {
	a := &Author{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		DateOfBirth:  r.DateOfBirth,
		DateOfDeath:  r.DateOfDeath,
		MainCategory: r.MainCategory,
	}
	for _, c := range r.Courses {
		a.Courses = append(a.Courses, course.Course{
			Title:       c.Title,
			Description: c.Description,
		})
	}
	return a
}

// AuthorResponse is the friendly representation: a single name field
// and the age computed from the birth and death dates.
type AuthorResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	MainCategory string    `json:"mainCategory"`
}

func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:           a.ID,
		Name:         a.Name(),
		Age:          a.Age(),
		MainCategory: a.MainCategory,
	}
}

// AuthorFullResponse mirrors the entity field-for-field. Selected via
// the application/vnd.marvin.author.full+json media type.
type AuthorFullResponse struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	DateOfBirth  time.Time  `json:"dateOfBirth"`
	DateOfDeath  *time.Time `json:"dateOfDeath"`
	MainCategory string     `json:"mainCategory"`
}

func (a *Author) ToFullResponse() AuthorFullResponse {
	return AuthorFullResponse{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		DateOfBirth:  a.DateOfBirth,
		DateOfDeath:  a.DateOfDeath,
		MainCategory: a.MainCategory,
	}
}

// AuthorFilter carries the non-pagination query parameters of the
// author list endpoint.
type AuthorFilter struct {
	MainCategory string
	SearchQuery  string
	OrderBy      string
}
