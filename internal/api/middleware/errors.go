package middleware

import (
	"log"
	"net/http"

	"github.com/davideoddi/usergroups-api/pkg/response"
	"github.com/gin-gonic/gin"
)

// ErrorHandler is the single fallback for errors a handler could not map
// to a specific status: it logs them and answers a uniform 500. Validation
// and not-found responses never reach this path.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log.Printf("[%s] unhandled error: %v", c.GetString(requestIDKey), err)

		if c.Writer.Written() {
			return
		}

		msg := err.Error()
		if msg == "" {
			msg = "Internal Server Error."
		}
		c.JSON(http.StatusInternalServerError, response.InternalErrorResponse{
			Error:   "Internal Server Error",
			Message: msg,
		})
	}
}
