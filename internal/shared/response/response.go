package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProblemDetails is the RFC 9457 error payload returned for every
// client error (400, 404, 422).
type ProblemDetails struct {
	Type     string              `json:"type"`
	Title    string              `json:"title"`
	Status   int                 `json:"status"`
	Detail   string              `json:"detail,omitempty"`
	Instance string              `json:"instance,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
}

const (
	typeBadRequest    = "https://tools.ietf.org/html/rfc9110#section-15.5.1"
	typeNotFound      = "https://tools.ietf.org/html/rfc9110#section-15.5.5"
	typeUnprocessable = "https://tools.ietf.org/html/rfc4918#section-11.2"
)

func BadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     typeBadRequest,
		Title:    "Bad Request",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request.URL.RequestURI(),
	})
}

func NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     typeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request.URL.RequestURI(),
	})
}

// ValidationProblem reports field-level validation failures as 422.
func ValidationProblem(c *gin.Context, errors map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, ProblemDetails{
		Type:     typeUnprocessable,
		Title:    "One or more validation errors occurred.",
		Status:   http.StatusUnprocessableEntity,
		Detail:   "See the errors field for details.",
		Instance: c.Request.URL.RequestURI(),
		Errors:   errors,
	})
}

func InternalServerError(c *gin.Context, detail string) {
	c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     "https://tools.ietf.org/html/rfc9110#section-15.6.1",
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request.URL.RequestURI(),
	})
}
