package routes

import (
	"time"

	"MindHavenGo/controllers"
	"MindHavenGo/middleware"
	"MindHavenGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, client *services.LLMClient, loginRateLimit int) {
	authController := controllers.AuthController{}
	chatService := services.NewChatService(client)
	chatController := controllers.NewChatController(chatService)
	rescoreService := services.NewRescoreService(client)
	moodController := controllers.NewMoodController(rescoreService)
	testController := controllers.TestController{}
	dailyMoodController := controllers.DailyMoodController{}
	userController := controllers.UserController{}

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", middleware.RateLimit("register", loginRateLimit, time.Minute), authController.Register)
		public.POST("/auth/confirm", authController.Confirm)
		public.POST("/auth/login", middleware.RateLimit("login", loginRateLimit, time.Minute), authController.Login)
		public.POST("/auth/test-user", authController.CreateTestUser)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// Chat 相关接口
		private.POST("/chat", chatController.SendMessage)
		private.GET("/chat", chatController.GetHistory)
		private.POST("/rescore", moodController.Rescore)

		// 情绪记录与图表聚合
		private.POST("/moods", moodController.CreateMood)
		private.GET("/moods", moodController.ListMoods)
		private.GET("/moods/history", moodController.GetHistory)
		private.GET("/moods/distribution", moodController.GetDistribution)

		// DASS-21 测评
		private.GET("/tests/questions", testController.GetQuestions)
		private.POST("/tests", testController.SubmitTest)
		private.GET("/tests", testController.GetTests)

		// 每日心情打分
		private.PUT("/daily-mood", dailyMoodController.Upsert)
		private.GET("/daily-mood", dailyMoodController.List)

		private.GET("/user", userController.GetUser)
	}

	// 内部路由组（仅限服务器内部调用）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	{
		internal.POST("/user/premium", userController.SetPremium)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
