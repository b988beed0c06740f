package app

import (
	"course_builder_backend/docs"
	"course_builder_backend/internal/util"
	"course_builder_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")
	{
		a.registerCourseRoutes(api, c)
		a.registerUserRoutes(api, c)

		api.GET("/learning-paths", c.learningPath.ListLearningPaths)
		api.GET("/learning-paths/:id", c.learningPath.GetLearningPath)
	}

	router.NoRoute(util.RouteNotFound)
}

func (a *App) registerCourseRoutes(api *gin.RouterGroup, c *controllers) {
	courses := api.Group("/courses")
	{
		courses.GET("", c.course.ListCourses)
		courses.GET("/:id", c.course.GetCourse)
		courses.GET("/:id/lessons", c.course.GetCourseLessons)
		courses.POST("/:id/enroll", c.course.Enroll)
		courses.POST("/:id/feedback", c.course.SubmitFeedback)
		courses.GET("/:id/assessment", c.assessment.GetAssessment)
		courses.POST("/:id/assessment", c.assessment.SubmitAssessment)
	}
}

func (a *App) registerUserRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/users", c.user.ListUsers)
	api.GET("/users/:id", c.user.GetUser)

	user := api.Group("/user/:id")
	{
		user.GET("/progress", c.user.GetProgress)
		user.PUT("/progress", c.user.UpdateProgress)
		user.GET("/achievements", c.user.GetAchievements)
	}
}
