package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"courselibrary-backend/internal/domains/author"
	"courselibrary-backend/internal/shared/links"
	"courselibrary-backend/internal/shared/mediatype"
	"courselibrary-backend/internal/shared/pagination"
	"courselibrary-backend/internal/shared/response"
	"courselibrary-backend/internal/shared/shaping"
	"courselibrary-backend/internal/shared/sorting"
	"courselibrary-backend/pkg/logger"
)

const authorsBasePath = "/api/authors"

type AuthorHandler struct {
	service author.Service
	sorting *sorting.Registry
}

func NewAuthorHandler(svc author.Service, sortReg *sorting.Registry) *AuthorHandler {
	return &AuthorHandler{service: svc, sorting: sortReg}
}

func authorPath(id uuid.UUID) string {
	return authorsBasePath + "/" + id.String()
}

// authorLinks lists the valid next actions on a single author. The
// self link reproduces the fields selection of the current request.
func authorLinks(id uuid.UUID, fields string) []links.Link {
	path := authorPath(id)

	self := path
	if strings.TrimSpace(fields) != "" {
		self = path + "?fields=" + url.QueryEscape(fields)
	}

	return []links.Link{
		links.New(self, links.RelSelf, "GET"),
		links.New(path, "delete_author", "DELETE"),
		links.New(path+"/courses", "create_course_for_author", "POST"),
		links.New(path+"/courses", "courses", "GET"),
	}
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, author.ErrAuthorNotFound):
		response.NotFound(c, err.Error())
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.FromValidation(c, err)
			return
		}
		logger.Error("author request failed", err)
		response.InternalServerError(c, "an unexpected error occurred")
	}
}

// List - GET /api/authors?pageNumber&pageSize&orderBy&fields&mainCategory&searchQuery
//
// Fixed order per request: validate order-by, validate fields, fetch
// the page, emit the pagination header, then shape and link.
func (h *AuthorHandler) List(c *gin.Context) {
	variant, err := mediatype.ParseAccept(c.GetHeader("Accept"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filter := author.AuthorFilter{
		MainCategory: c.Query("mainCategory"),
		SearchQuery:  c.Query("searchQuery"),
		OrderBy:      c.Query("orderBy"),
	}
	fields := c.Query("fields")

	if !h.sorting.ValidMappingExistsFor(author.ResponseShape, author.EntityShape, filter.OrderBy) {
		response.BadRequest(c, fmt.Sprintf("orderBy contains unknown fields: %q", filter.OrderBy))
		return
	}

	if missing := author.ResponseFields.MissingFields(fields); len(missing) > 0 {
		response.BadRequest(c, fmt.Sprintf("fields do not exist on the resource: %s", strings.Join(missing, ", ")))
		return
	}

	page := pagination.NewPageRequest(
		queryInt(c, "pageNumber", pagination.DefaultPageNumber),
		queryInt(c, "pageSize", pagination.DefaultPageSize),
	)

	list, err := h.service.GetPage(c.Request.Context(), filter, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writePaginationHeader(c, list.Meta())

	responses := make([]author.AuthorResponse, len(list.Items))
	for i := range list.Items {
		responses[i] = list.Items[i].ToResponse()
	}
	shaped := author.ResponseFields.ShapeSlice(responses, fields)

	if !variant.HATEOAS {
		c.JSON(http.StatusOK, shaped)
		return
	}

	for i := range shaped {
		shaped[i].Set("links", authorLinks(responses[i].ID, ""))
	}

	collectionLinks := links.Collection(links.PageQuery{
		Path: authorsBasePath,
		Params: url.Values{
			"fields":       {fields},
			"orderBy":      {filter.OrderBy},
			"mainCategory": {filter.MainCategory},
			"searchQuery":  {filter.SearchQuery},
		},
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, list.HasPrevious(), list.HasNext())

	c.JSON(http.StatusOK, gin.H{
		"value": shaped,
		"links": collectionLinks,
	})
}

// Get - GET /api/authors/:id?fields
func (h *AuthorHandler) Get(c *gin.Context) {
	variant, err := mediatype.ParseAccept(c.GetHeader("Accept"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := uuid.Parse(c.Param("authorId"))
	if err != nil {
		response.BadRequest(c, "invalid author id format")
		return
	}

	fields := c.Query("fields")
	if missing := missingForVariant(variant, fields); len(missing) > 0 {
		response.BadRequest(c, fmt.Sprintf("fields do not exist on the resource: %s", strings.Join(missing, ", ")))
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.shapeAuthor(found, fields, variant))
}

// Create - POST /api/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	variant, err := mediatype.ParseAccept(c.GetHeader("Accept"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", authorPath(created.ID))
	c.JSON(http.StatusCreated, h.shapeAuthor(created, "", variant))
}

// Delete - DELETE /api/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("authorId"))
	if err != nil {
		response.BadRequest(c, "invalid author id format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Options - OPTIONS /api/authors
func (h *AuthorHandler) Options(c *gin.Context) {
	c.Header("Allow", "GET,HEAD,POST,OPTIONS")
	c.Status(http.StatusOK)
}

// shapeAuthor projects one author for the negotiated variant and
// appends its links when HATEOAS was requested.
func (h *AuthorHandler) shapeAuthor(a *author.Author, fields string, variant mediatype.Variant) *shaping.Shaped {
	var shaped *shaping.Shaped
	if variant.Full {
		shaped = author.FullResponseFields.Shape(a.ToFullResponse(), fields)
	} else {
		shaped = author.ResponseFields.Shape(a.ToResponse(), fields)
	}

	if variant.HATEOAS {
		shaped.Set("links", authorLinks(a.ID, fields))
	}
	return shaped
}

func missingForVariant(variant mediatype.Variant, fields string) []string {
	if variant.Full {
		return author.FullResponseFields.MissingFields(fields)
	}
	return author.ResponseFields.MissingFields(fields)
}

func writePaginationHeader(c *gin.Context, meta pagination.Meta) {
	payload, err := json.Marshal(meta)
	if err != nil {
		logger.Error("failed to marshal pagination metadata", err)
		return
	}
	c.Header("X-Pagination", string(payload))
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
