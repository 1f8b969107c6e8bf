package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"login_web/internal/api/handlers"
	"login_web/internal/middleware"
	"login_web/internal/service"
	"login_web/internal/session"
)

func SetupRoutes(r *gin.Engine, services *service.Services, sessions *session.Store) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User, sessions)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 用戶登入相關
		api.POST("/login", authHandler.Login)
		api.GET("/check", authHandler.Check)
		api.POST("/logout", authHandler.Logout)

		// 資料庫連線測試
		api.GET("/test-db", authHandler.TestDB)
	}

	// 需要登入的路由
	authorized := api.Group("/")
	authorized.Use(middleware.SessionAuth(sessions))
	{
		authorized.GET("/home", authHandler.Home)
	}
}
