package routes

import (
	"github.com/davideoddi/usergroups-api/internal/api/handlers"
	"github.com/davideoddi/usergroups-api/internal/application"
	"github.com/davideoddi/usergroups-api/internal/repository"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos) {
	services := application.New(repos)
	h := handlers.New(services)

	r.GET("/healthz", handlers.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := r.Group("/users")
	{
		users.GET("", h.User.GetUsers)
		users.POST("", h.User.CreateUser)
		users.GET("/group/:id", h.User.GetUsersByGroup)
		users.POST("/group", h.UserGroup.AddUserToGroup)
		users.GET("/:id", h.User.GetUserByID)
		users.PUT("/:id", h.User.UpdateUser)
		users.DELETE("/:id", h.User.DeleteUser)
		users.DELETE("/:id/groups/:group_id", h.UserGroup.RemoveUserFromGroup)
	}

	groups := r.Group("/groups")
	{
		groups.GET("", h.Group.GetGroups)
		groups.POST("", h.Group.CreateGroup)
		groups.GET("/user/:id", h.Group.GetGroupsByUser)
		groups.GET("/:id", h.Group.GetGroupByID)
		groups.PUT("/:id", h.Group.UpdateGroup)
		groups.DELETE("/:id", h.Group.DeleteGroup)
	}
}
