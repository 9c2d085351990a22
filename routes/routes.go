package routes

import (
	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
	"github.com/ahanaf-mohosen/DailyMoodCheck/controllers"
	"github.com/ahanaf-mohosen/DailyMoodCheck/middleware"
	"github.com/ahanaf-mohosen/DailyMoodCheck/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, conf config.Config, mailer services.Mailer, alertService *services.AlertService) {
	moodService := services.NewMoodService(services.DefaultLexicon())
	quoteService := services.NewQuoteService(&services.GormQuoteRepository{}, nil)

	authController := controllers.NewAuthController(mailer, conf)
	journalController := controllers.NewJournalController(moodService, quoteService, alertService)
	userController := controllers.UserController{}
	quoteController := controllers.QuoteController{}
	statsController := controllers.StatsController{}

	// 公开路由（无需认证）
	public := r.Group("/api")
	{
		public.POST("/auth/signup", authController.Signup)
		public.POST("/auth/verify", authController.Verify)
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
	}

	// 需要认证的路由
	private := r.Group("/api")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// 日记相关接口
		private.POST("/journal/analyze", journalController.AnalyzeEntry)
		private.POST("/journal/save", journalController.SaveEntry)
		private.GET("/journal/entries", journalController.GetEntries)

		// 用户资料与统计
		private.GET("/user/profile", userController.GetProfile)
		private.PUT("/user/profile", userController.UpdateProfile)
		private.GET("/user/stats", statsController.GetStats)
		private.GET("/mood/weekly", statsController.GetWeeklyMood)

		// 名言收藏
		private.POST("/quotes/:quoteId/save", quoteController.SaveQuote)
		private.DELETE("/quotes/:quoteId/save", quoteController.UnsaveQuote)
		private.GET("/quotes/saved", quoteController.GetSavedQuotes)
		private.GET("/quotes/:quoteId/saved", quoteController.IsQuoteSaved)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
