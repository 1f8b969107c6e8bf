package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"login_web/internal/api"
	"login_web/internal/models"
	"login_web/internal/repository"
	"login_web/internal/service"
	"login_web/internal/session"
	"login_web/internal/storage"
	"login_web/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 從配置文件和環境變數中讀取設置，如數據庫連接信息和服務器地址等
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 啟動時先確認資料庫連線可用
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 寫入預設的示範帳號
	if err := db.SeedUsers(); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	// 初始化 repositories 和 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	// 初始化 session store，管理每個客戶端的登入狀態
	sessions := session.NewStore(cfg.Session.Secret)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services, sessions)

	// 啟動伺服器
	log.Printf("Server listening on %s", cfg.Server.Address)
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
