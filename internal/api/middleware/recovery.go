package middleware

import (
	"net/http"

	"github.com/davideoddi/usergroups-api/pkg/response"
	"github.com/gin-gonic/gin"
)

// Recovery converts panics into the same 500 body unexpected errors get,
// instead of gin's bare status-only response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.InternalErrorResponse{
			Error:   "Internal Server Error",
			Message: "Internal Server Error.",
		})
	})
}
