package v1

import (
	"github.com/bugtrack-simple/middleware"
	"github.com/bugtrack-simple/repositories"
	"github.com/bugtrack-simple/services"
	"github.com/gin-gonic/gin"
)

var (
	authService    *services.AuthService
	projectService *services.ProjectService
	bugService     *services.BugService
)

// RegisterRoutes wires services and registers the API surface
func RegisterRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository()
	projectRepo := repositories.NewProjectRepository()
	bugRepo := repositories.NewBugRepository()

	authService = services.NewAuthService(userRepo)
	projectService = services.NewProjectService(projectRepo, userRepo)
	bugService = services.NewBugService(projectRepo, bugRepo)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	router.POST("/signup", Signup)
	router.POST("/login", Login)

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.PATCH("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)

		projectGroup.GET("/:id/bugs", ListBugs)
		projectGroup.POST("/:id/bugs", CreateBug)
		projectGroup.PATCH("/:id/bugs/:bugId", EditBug)
		projectGroup.DELETE("/:id/bugs/:bugId", DeleteBug)
		projectGroup.POST("/:id/bugs/:bugId/close", CloseBug)
		projectGroup.POST("/:id/bugs/:bugId/reopen", ReopenBug)
	}
}
