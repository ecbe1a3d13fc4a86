package main

import (
	"log"

	"github.com/davideoddi/usergroups-api/internal/api/middleware"
	"github.com/davideoddi/usergroups-api/internal/api/routes"
	"github.com/davideoddi/usergroups-api/internal/config"
	"github.com/davideoddi/usergroups-api/internal/config/db"
	"github.com/davideoddi/usergroups-api/internal/domain/group"
	"github.com/davideoddi/usergroups-api/internal/domain/user"
	"github.com/davideoddi/usergroups-api/internal/repository"
	"github.com/gin-gonic/gin"

	_ "github.com/davideoddi/usergroups-api/docs"
)

// @title Users & Groups API
// @version 1.0
// @description REST API managing users, groups and their many-to-many membership.
// @BasePath /
func main() {
	config.LoadConfig()

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(
		&user.User{},
		&group.Group{},
		&group.UserGroup{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestID())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.ErrorHandler())

	routes.RegisterRoutes(router, repository.NewRepositories(database))

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
