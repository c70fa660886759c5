package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerLearnerRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// storefront surface: browsable without an account
		public.GET("/courses", c.course.Catalog)
		public.GET("/courses/:id", c.course.Get)
		public.GET("/catalog/:slug", c.course.GetBySlug)
		public.GET("/courses/:id/reviews", c.review.ListForCourse)
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.POST("/uploads", c.upload.Upload)

	// course content, visible to any signed-in user
	rg.GET("/courses/:id/modules", c.content.ListModules)
	rg.GET("/modules/:id/lessons", c.content.ListLessons)
	rg.GET("/lessons/:id/assignments", c.content.ListAssignments)

	// enrollments
	rg.POST("/enrollments", c.enrollment.Enroll)
	rg.GET("/enrollments", c.enrollment.ListMine)
	rg.GET("/enrollments/:id", c.enrollment.Get)

	// lesson progress
	rg.GET("/lessons/:id/progress", c.progress.Get)
	rg.POST("/lessons/:id/progress", c.progress.Record)

	// submissions
	rg.POST("/assignments/:id/submissions", c.submission.Submit)
	rg.GET("/assignments/:id/submissions", c.submission.ListForAssignment)
	rg.GET("/submissions", c.submission.List)
	rg.POST("/submissions/:id/grade", c.submission.Grade)
	rg.POST("/submissions/:id/resubmit", c.submission.RequestResubmission)

	// certificates
	rg.GET("/certificates", c.certificate.ListMine)
	rg.GET("/courses/:id/certificate", c.certificate.Get)

	// reviews
	rg.POST("/courses/:id/reviews", c.review.Create)
}

func (a *App) registerInstructorRoutes(rg *gin.RouterGroup, c *controllers) {
	instructor := rg.Group("")
	instructor.Use(middleware.RoleMiddleware(model.Instructor, model.ContentAdmin, model.Admin))
	{
		instructor.POST("/courses", c.course.Create)
		instructor.PUT("/courses/:id", c.course.Update)
		instructor.DELETE("/courses/:id", c.course.Delete)
		instructor.GET("/instructor/courses", c.course.ListMine)

		instructor.POST("/courses/:id/modules", c.content.CreateModule)
		instructor.PUT("/modules/:id", c.content.UpdateModule)
		instructor.DELETE("/modules/:id", c.content.DeleteModule)

		instructor.POST("/modules/:id/lessons", c.content.CreateLesson)
		instructor.PUT("/lessons/:id", c.content.UpdateLesson)
		instructor.DELETE("/lessons/:id", c.content.DeleteLesson)

		instructor.POST("/lessons/:id/assignments", c.content.CreateAssignment)
		instructor.PUT("/assignments/:id", c.content.UpdateAssignment)
		instructor.DELETE("/assignments/:id", c.content.DeleteAssignment)
	}
}
