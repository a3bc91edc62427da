package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"book-catalog/internal/shared/apperror"
)

// ErrorResponder is the single place failures become responses. Handlers push
// errors onto the context and return; after the chain runs, the last error is
// mapped to a status and message and the error view is rendered. Nothing
// reaches the transport unhandled.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		status, message := apperror.From(last.Err)

		if status >= 500 {
			log.Error().
				Str("request_id", c.GetString("request_id")).
				Err(last.Err).
				Msg("request failed")
		}

		if c.Writer.Written() {
			return
		}

		c.HTML(status, "error", gin.H{
			"Status":  status,
			"Message": message,
		})
	}
}
