package middleware

import (
	"log"

	"portfolio-api/internal/apierr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID assigns each request an identifier, echoed in the
// X-Request-ID response header and available for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Recovery converts panics into the standard error envelope. The panic
// value and stack are always logged server-side; they reach the caller
// only outside release mode.
func Recovery(release bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		requestID := c.GetString("request_id")
		log.Printf("panic recovered (request_id=%s): %v", requestID, recovered)

		e := apierr.Internal("")
		if !release {
			e = e.WithDetails(map[string]any{
				"cause":      recovered,
				"request_id": requestID,
			})
		}
		c.AbortWithStatusJSON(e.Status, e.Envelope())
	})
}

// ErrorHandler serializes errors attached to the context with c.Error
// into the standard envelope, for handlers that defer response writing.
func ErrorHandler(release bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		e := apierr.From(err, !release)
		if e.Status >= 500 {
			log.Printf("request failed (request_id=%s): %v", c.GetString("request_id"), err)
		}
		c.JSON(e.Status, e.Envelope())
	}
}
