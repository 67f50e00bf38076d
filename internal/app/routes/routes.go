package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sonquang/laixe-registry/internal/app/controllers"
	"github.com/sonquang/laixe-registry/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	teacherController *controllers.TeacherController,
	importController *controllers.ImportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", teacherController.ListTeachers)
			teachers.GET("/search", teacherController.SearchTeacher)
			teachers.GET("/:id", teacherController.GetTeacher)
		}

		imports := authenticated.Group("/imports")
		{
			imports.POST("", importController.ImportWorkbook)
		}
	}
}
