package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"course-catalog-backend/internal/shared/middleware"
	"course-catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.Catalog.AllowedOrigin),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupCourseRoutes(v1, c)
		setupCourseDraftRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

// ========================================
// USER ROUTES (Protected)
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.POST("", middleware.AuthMiddleware(c.JWTManager), c.AuthorHandler.Create)
	}
}

// ========================================
// COURSE ROUTES
// ========================================
func setupCourseRoutes(v1 *gin.RouterGroup, c *container.Container) {
	courses := v1.Group("/courses")
	{
		courses.GET("", c.CourseHandler.List)
		courses.GET("/:id", c.CourseHandler.GetByID)
	}
}

// ========================================
// COURSE DRAFT ROUTES (Protected)
// ========================================
func setupCourseDraftRoutes(v1 *gin.RouterGroup, c *container.Container) {
	drafts := v1.Group("/course-drafts")
	drafts.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		drafts.POST("", c.DraftHandler.Start)
		drafts.GET("", c.DraftHandler.Get)
		drafts.DELETE("", c.DraftHandler.Discard)
		drafts.PATCH("/fields", c.DraftHandler.SetField)
		drafts.POST("/validate", c.DraftHandler.Validate)
		drafts.POST("/authors", c.DraftHandler.CreateAuthor)
		drafts.POST("/authors/:id", c.DraftHandler.Assign)
		drafts.DELETE("/authors/:id", c.DraftHandler.Unassign)
		drafts.POST("/submit", c.DraftHandler.Submit)
		drafts.POST("/cancel", c.DraftHandler.Cancel)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		})
	}
}
