package handlers

import (
	"net/http"

	"github.com/davideoddi/usergroups-api/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Group     *GroupHandler
	User      *UserHandler
	UserGroup *UserGroupHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Group:     NewGroupHandler(svc.Group),
		User:      NewUserHandler(svc.User),
		UserGroup: NewUserGroupHandler(svc.UserGroup),
	}
}

// Healthz godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
