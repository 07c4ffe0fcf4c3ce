package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"poker_web/internal/api"
	"poker_web/internal/config"
	"poker_web/internal/repository"
	records "poker_web/internal/repository/models"
	"poker_web/internal/service"
	"poker_web/internal/storage"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 載入應用程式配置
	// 從配置文件與環境變數讀取設置，如儲存後端和服務器地址等
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("載入配置失敗")
	}

	clock := clockwork.NewRealClock()

	// 依配置選擇持久化後端
	// postgres 提供跨程序的耐久儲存，memory 僅供開發與測試使用
	var roomRepo repository.RoomRepository
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
		if err != nil {
			logger.Fatal().Err(err).Msg("初始化資料庫失敗")
		}
		// 確保在程序結束時關閉數據庫連接
		defer db.Close()

		// 自動遷移房間記錄的表結構
		if err := db.AutoMigrate(&records.RoomRecord{}); err != nil {
			logger.Fatal().Err(err).Msg("資料庫遷移失敗")
		}

		roomRepo = repository.NewPostgresRoomRepository(db, clock, cfg.Room.RetentionWindow)
	case "memory":
		roomRepo = repository.NewMemoryRoomRepository(clock, cfg.Room.RetentionWindow)
	default:
		logger.Fatal().Str("driver", cfg.Storage.Driver).Msg("不支援的儲存後端")
	}

	// 初始化 repositories 與 services
	repos := repository.NewRepositories(roomRepo)
	services := service.NewServices(repos, clock, cfg.Room.InactivityThreshold)

	// 設置 Gin 路由
	r := gin.New()
	r.Use(gin.Recovery())
	api.SetupRoutes(r, services, logger)

	// 啟動伺服器
	logger.Info().Str("address", cfg.Server.Address).Msg("伺服器啟動")
	if err := r.Run(cfg.Server.Address); err != nil {
		logger.Fatal().Err(err).Msg("伺服器運行失敗")
	}
}
