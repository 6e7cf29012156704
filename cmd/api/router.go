package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courselibrary-backend/internal/shared/middleware"
	"courselibrary-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(api, c)
		setupCourseRoutes(api, c)
		setupAuthorCollectionRoutes(api, c)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.HEAD("", c.AuthorHandler.List)
		authors.POST("", c.AuthorHandler.Create)
		authors.OPTIONS("", c.AuthorHandler.Options)
		authors.GET("/:authorId", c.AuthorHandler.Get)
		authors.DELETE("/:authorId", c.AuthorHandler.Delete)
	}
}

// ========================================
// COURSE ROUTES (nested under an author)
// ========================================
func setupCourseRoutes(api *gin.RouterGroup, c *container.Container) {
	courses := api.Group("/authors/:authorId/courses")
	{
		courses.GET("", c.CourseHandler.List)
		courses.POST("", c.CourseHandler.Create)
		courses.GET("/:courseId", c.CourseHandler.Get)
		courses.PUT("/:courseId", c.CourseHandler.Upsert)
		courses.PATCH("/:courseId", c.CourseHandler.Patch)
		courses.DELETE("/:courseId", c.CourseHandler.Delete)
	}
}

// ========================================
// AUTHOR COLLECTION ROUTES
// ========================================
func setupAuthorCollectionRoutes(api *gin.RouterGroup, c *container.Container) {
	collections := api.Group("/authorcollections")
	{
		collections.GET("/:ids", c.AuthorCollectionHandler.Get)
		collections.POST("", c.AuthorCollectionHandler.Create)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unavailable"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "unavailable"
		}

		status := http.StatusOK
		overall := "ok"
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
