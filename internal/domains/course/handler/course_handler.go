package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"courselibrary-backend/internal/domains/course"
	"courselibrary-backend/internal/shared/links"
	"courselibrary-backend/internal/shared/mediatype"
	"courselibrary-backend/internal/shared/response"
	"courselibrary-backend/pkg/logger"
)

type CourseHandler struct {
	service course.Service
}

func NewCourseHandler(svc course.Service) *CourseHandler {
	return &CourseHandler{service: svc}
}

// courseWithLinks decorates a course response with its action links
// for the HATEOAS content variant.
type courseWithLinks struct {
	course.CourseResponse
	Links []links.Link `json:"links"`
}

func coursePath(authorID, courseID uuid.UUID) string {
	return fmt.Sprintf("/api/authors/%s/courses/%s", authorID, courseID)
}

func courseLinks(authorID, courseID uuid.UUID) []links.Link {
	path := coursePath(authorID, courseID)
	return []links.Link{
		links.New(path, links.RelSelf, "GET"),
		links.New(path, "delete_course", "DELETE"),
		links.New(path, "update_course", "PUT"),
		links.New(path, "partially_update_course", "PATCH"),
	}
}

func (h *CourseHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, course.ErrAuthorNotFound), errors.Is(err, course.ErrCourseNotFound):
		response.NotFound(c, err.Error())
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.FromValidation(c, err)
			return
		}
		logger.Error("course request failed", err)
		response.InternalServerError(c, "an unexpected error occurred")
	}
}

// parseIDs reads :authorId (and optionally :courseId) path params.
func parseIDs(c *gin.Context, withCourse bool) (authorID, courseID uuid.UUID, ok bool) {
	var err error
	authorID, err = uuid.Parse(c.Param("authorId"))
	if err != nil {
		response.BadRequest(c, "invalid author id format")
		return uuid.Nil, uuid.Nil, false
	}
	if withCourse {
		courseID, err = uuid.Parse(c.Param("courseId"))
		if err != nil {
			response.BadRequest(c, "invalid course id format")
			return uuid.Nil, uuid.Nil, false
		}
	}
	return authorID, courseID, true
}

// List - GET /api/authors/:authorId/courses
func (h *CourseHandler) List(c *gin.Context) {
	authorID, _, ok := parseIDs(c, false)
	if !ok {
		return
	}

	variant, err := mediatype.ParseAccept(c.GetHeader("Accept"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	courses, err := h.service.List(c.Request.Context(), authorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !variant.HATEOAS {
		resp := make([]course.CourseResponse, len(courses))
		for i := range courses {
			resp[i] = courses[i].ToResponse()
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	items := make([]courseWithLinks, len(courses))
	for i := range courses {
		items[i] = courseWithLinks{
			CourseResponse: courses[i].ToResponse(),
			Links:          courseLinks(authorID, courses[i].ID),
		}
	}

	listPath := fmt.Sprintf("/api/authors/%s/courses", authorID)
	c.JSON(http.StatusOK, gin.H{
		"value": items,
		"links": []links.Link{
			links.New(listPath, links.RelSelf, "GET"),
			links.New(listPath, "create_course_for_author", "POST"),
		},
	})
}

// Get - GET /api/authors/:authorId/courses/:courseId
func (h *CourseHandler) Get(c *gin.Context) {
	authorID, courseID, ok := parseIDs(c, true)
	if !ok {
		return
	}

	variant, err := mediatype.ParseAccept(c.GetHeader("Accept"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	found, err := h.service.Get(c.Request.Context(), authorID, courseID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondCourse(c, http.StatusOK, found, variant)
}

// Create - POST /api/authors/:authorId/courses
func (h *CourseHandler) Create(c *gin.Context) {
	authorID, _, ok := parseIDs(c, false)
	if !ok {
		return
	}

	variant, err := mediatype.ParseAccept(c.GetHeader("Accept"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req course.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), authorID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", coursePath(authorID, created.ID))
	h.respondCourse(c, http.StatusCreated, created, variant)
}

// Upsert - PUT /api/authors/:authorId/courses/:courseId
// Replaces the course; an unknown id inserts under that id and
// answers 201 with a Location to the canonical GET.
func (h *CourseHandler) Upsert(c *gin.Context) {
	authorID, courseID, ok := parseIDs(c, true)
	if !ok {
		return
	}

	variant, err := mediatype.ParseAccept(c.GetHeader("Accept"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req course.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	upserted, created, err := h.service.Upsert(c.Request.Context(), authorID, courseID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if created {
		c.Header("Location", coursePath(authorID, upserted.ID))
		h.respondCourse(c, http.StatusCreated, upserted, variant)
		return
	}
	c.Status(http.StatusNoContent)
}

// Patch - PATCH /api/authors/:authorId/courses/:courseId
func (h *CourseHandler) Patch(c *gin.Context) {
	authorID, courseID, ok := parseIDs(c, true)
	if !ok {
		return
	}

	variant, err := mediatype.ParseAccept(c.GetHeader("Accept"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req course.PatchCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	patched, created, err := h.service.Patch(c.Request.Context(), authorID, courseID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if created {
		c.Header("Location", coursePath(authorID, patched.ID))
		h.respondCourse(c, http.StatusCreated, patched, variant)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete - DELETE /api/authors/:authorId/courses/:courseId
func (h *CourseHandler) Delete(c *gin.Context) {
	authorID, courseID, ok := parseIDs(c, true)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), authorID, courseID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) respondCourse(c *gin.Context, status int, found *course.Course, variant mediatype.Variant) {
	if !variant.HATEOAS {
		c.JSON(status, found.ToResponse())
		return
	}
	c.JSON(status, courseWithLinks{
		CourseResponse: found.ToResponse(),
		Links:          courseLinks(found.AuthorID, found.ID),
	})
}
