package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"briskr-go/internal/dto"
	"briskr-go/internal/handler"
	"briskr-go/internal/i18n"
	"briskr-go/internal/middleware"
	"briskr-go/internal/repository"
	"briskr-go/internal/service"
	"briskr-go/pkg/logging"
)

func initConfig() {
	wd, _ := os.Getwd()
	log.Printf("Loading config from: %s/config.yaml", wd)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// 管理密钥优先从环境变量读取（部署时通过 Secret 注入）
	_ = viper.BindEnv("admin.key", "ADMIN_KEY")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
}

func startServer(r *gin.Engine) {
	addr := viper.GetString("server.addr")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// 启动服务器
	go func() {
		logging.Logger.Info("Server is running on " + addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := repository.RedisPool.Close(); err != nil {
		logging.Logger.Warn("Redis pool close failed", zap.Error(err))
	}

	logging.Logger.Info("Server exiting")
}

func main() {
	initConfig()

	logging.InitLoggerFromConfig()
	logging.Logger.Info("Application started")

	// 管理密钥必须配置，否则拒绝启动（创建/统计接口全部依赖它）
	adminKey := viper.GetString("admin.key")
	if adminKey == "" {
		logging.Logger.Fatal("admin.key is not configured (set ADMIN_KEY or admin.key in config.yaml)")
	}

	repository.InitDB(logging.Logger, logging.AtomicLevel)
	repository.InitRedis()

	// 初始化 i18n（加载 TOML 文件）
	bundle, err := i18n.InitI18n([]string{
		"./i18n/en.toml",
		"./i18n/ko.toml",
	}, "en")
	if err != nil {
		panic(err)
	}

	dto.RegisterCustomValidators()

	r := gin.New()
	r.Use(gin.Recovery())

	// 注册全局错误中间件
	r.Use(middleware.GlobalErrorMiddleware())
	r.Use(middleware.ZapGinLogger(logging.Logger))
	r.Use(middleware.CorsMiddleware())
	// 使用 i18n 中间件
	r.Use(middleware.I18nMiddleware(bundle))

	r.SetHTMLTemplate(handler.Templates())

	api := r.Group("/api", middleware.AdminAuthMiddleware(adminKey))
	{
		api.POST("/shorten", handler.CreateShortLinkHandler)
		api.GET("/stats", handler.StatsHandler)
	}

	r.GET("/", handler.HomeHandler)
	r.GET("/health", handler.HealthHandler)

	// 其余 GET 路径全部按短码跳转处理
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}
		handler.RedirectHandler(c)
	})

	c := cron.New()

	// 定时任务：每十分钟刷新一次总量快照
	_, addErr := c.AddFunc("*/10 * * * *", func() {
		if err := service.SnapshotTotals(); err != nil {
			logging.Logger.Error("Failed to refresh totals snapshot via cron job", zap.Error(err))
		}
	})

	if addErr != nil {
		logging.Logger.Fatal("Failed to schedule cron job", zap.Error(addErr))
	}

	c.Start()

	// 启动时先生成一次快照，面板首屏即有数据
	if err := service.SnapshotTotals(); err != nil {
		logging.Logger.Warn("Initial totals snapshot failed", zap.Error(err))
	}

	startServer(r)
}
