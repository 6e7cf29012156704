package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				c.JSON(http.StatusInternalServerError, gin.H{
					"type":   "https://tools.ietf.org/html/rfc9110#section-15.6.1",
					"title":  "Internal server error",
					"status": http.StatusInternalServerError,
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
