package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"interview_hub_backend/docs"
	"interview_hub_backend/internal/config"
	"interview_hub_backend/internal/middleware"
	"interview_hub_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudyRoutes(authGroup, c)
		a.registerMentorRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 目录内容只读，允许游客浏览
		public.GET("/courses", c.course.ListCourses)
		public.GET("/courses/:courseId", c.course.GetCourse)
		public.GET("/courses/:courseId/levels/:levelId", c.course.GetLevel)
		public.GET("/courses/:courseId/levels/:levelId/modules/:moduleId/questions", c.course.ListModuleQuestions)
		public.GET("/courses/:courseId/levels/:levelId/modules/:moduleId/questions/:index/plain", c.course.GetQuestionPlain)
	}
}

func (a *App) registerStudyRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/profile", c.auth.Profile)

	study := group.Group("/study")
	{
		study.GET("/view", c.study.GetViewState)
		study.PUT("/view", c.study.PutViewState)

		study.GET("/progress", c.study.GetProgress)
		study.POST("/progress/read", c.study.MarkRead)
		study.POST("/progress/:kind/toggle", c.study.ToggleProgress)

		study.GET("/theme", c.study.GetTheme)
		study.PUT("/theme", c.study.PutTheme)
	}

	// 级别维度的派生视图
	group.GET("/courses/:courseId/levels/:levelId/progress", c.study.GetLevelProgress)
	group.GET("/courses/:courseId/levels/:levelId/search", c.study.Search)
	group.GET("/courses/:courseId/levels/:levelId/bookmarks", c.study.ListBookmarks)
	group.GET("/courses/:courseId/levels/:levelId/favorites", c.study.ListFavorites)
}

func (a *App) registerMentorRoutes(group *gin.RouterGroup, c *controllers) {
	mentor := group.Group("/mentor")
	{
		mentor.POST("/feedback", c.mentor.Feedback)
		mentor.POST("/chat", c.mentor.Chat)
		mentor.GET("/quota", c.mentor.Quota)
	}
}
