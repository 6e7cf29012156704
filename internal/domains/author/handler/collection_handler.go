package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"courselibrary-backend/internal/domains/author"
	"courselibrary-backend/internal/shared/response"
	"courselibrary-backend/pkg/logger"
)

const collectionsBasePath = "/api/authorcollections"

// AuthorCollectionHandler serves batch author operations: fetch a set
// of authors by id list, or create several in one call.
type AuthorCollectionHandler struct {
	service author.Service
}

func NewAuthorCollectionHandler(svc author.Service) *AuthorCollectionHandler {
	return &AuthorCollectionHandler{service: svc}
}

// parseIDList accepts "id1,id2" with optional surrounding parentheses.
func parseIDList(raw string) ([]uuid.UUID, error) {
	raw = strings.TrimPrefix(raw, "(")
	raw = strings.TrimSuffix(raw, ")")

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid author id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Get - GET /api/authorcollections/:ids
// All ids must resolve; one missing author fails the whole request.
func (h *AuthorCollectionHandler) Get(c *gin.Context) {
	ids, err := parseIDList(c.Param("ids"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	authors, err := h.service.GetByIDs(c.Request.Context(), ids)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "one or more authors were not found")
			return
		}
		response.InternalServerError(c, "an unexpected error occurred")
		return
	}

	c.JSON(http.StatusOK, toResponses(authors))
}

// Create - POST /api/authorcollections
func (h *AuthorCollectionHandler) Create(c *gin.Context) {
	var reqs []author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(reqs) == 0 {
		response.BadRequest(c, "author collection cannot be empty")
		return
	}

	created, err := h.service.CreateMany(c.Request.Context(), reqs)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.FromValidation(c, err)
			return
		}
		logger.Error("author collection create failed", err)
		response.InternalServerError(c, "an unexpected error occurred")
		return
	}

	idStrings := make([]string, len(created))
	for i := range created {
		idStrings[i] = created[i].ID.String()
	}
	c.Header("Location", fmt.Sprintf("%s/(%s)", collectionsBasePath, strings.Join(idStrings, ",")))

	c.JSON(http.StatusCreated, toResponses(created))
}

func toResponses(authors []author.Author) []author.AuthorResponse {
	out := make([]author.AuthorResponse, len(authors))
	for i := range authors {
		out[i] = authors[i].ToResponse()
	}
	return out
}
