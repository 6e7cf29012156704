package course

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1500
)

// CreateCourseRequest - POST /api/authors/:authorId/courses
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r CreateCourseRequest) Validate() error {
	return validateTitleDescription(&r, &r.Title, &r.Description)
}

// UpdateCourseRequest - PUT /api/authors/:authorId/courses/:courseId
// Full replacement; also the upsert payload when the id is unknown.
type UpdateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r UpdateCourseRequest) Validate() error {
	return validateTitleDescription(&r, &r.Title, &r.Description)
}

// PatchCourseRequest - PATCH /api/authors/:authorId/courses/:courseId
// Merge patch: only non-nil fields are applied. Validation runs on the
// merged result, not on the patch document itself.
type PatchCourseRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ApplyTo merges the patch into an existing course.
func (r PatchCourseRequest) ApplyTo(c *Course) {
	if r.Title != nil {
		c.Title = *r.Title
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
}

// ValidateMerged checks the course after a patch has been applied.
func ValidateMerged(c *Course) error {
	req := UpdateCourseRequest{Title: c.Title, Description: c.Description}
	return req.Validate()
}

func validateTitleDescription(structPtr interface{}, title, description *string) error {
	err := validation.ValidateStruct(structPtr,
		validation.Field(title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(description,
			validation.Length(0, MaxDescriptionLength),
		),
	)
	if err != nil {
		return err
	}

	if *description != "" && *description == *title {
		return validation.Errors{
			"course": errors.New("the provided description should be different from the title"),
		}
	}
	return nil
}

// CourseResponse is the public representation of a course.
type CourseResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    uuid.UUID `json:"authorId"`
}

func (c *Course) ToResponse() CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		AuthorID:    c.AuthorID,
	}
}
