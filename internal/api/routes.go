package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"poker_web/internal/api/handlers"
	"poker_web/internal/middleware"
	"poker_web/internal/models"
	"poker_web/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services, logger zerolog.Logger) {
	// 初始化 handlers
	roomHandler := handlers.NewRoomHandler(services.Room, logger)

	// 前端以輪詢方式讀取房間狀態，允許跨來源請求
	r.Use(cors.Default())
	r.Use(middleware.RequestLogger(logger))

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	{
		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// 估點牌組，僅供前端顯示使用
		api.GET("/deck", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"deck": models.Deck,
			})
		})
	}

	// 估點房間相關
	rooms := api.Group("/rooms")
	{
		rooms.POST("", roomHandler.CreateRoom)               // 建立新房間
		rooms.GET("/:id", roomHandler.GetRoom)               // 輪詢房間狀態
		rooms.POST("/:id/actions", roomHandler.SubmitAction) // 提交房間內操作
	}
}
