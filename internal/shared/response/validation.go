package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FromValidation renders an ozzo-validation error as a 422 problem
// details payload with field-keyed messages.
func FromValidation(c *gin.Context, err error) {
	fieldErrors := map[string][]string{}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			fieldErrors[field] = append(fieldErrors[field], ferr.Error())
		}
	} else {
		fieldErrors["body"] = []string{err.Error()}
	}

	ValidationProblem(c, fieldErrors)
}
