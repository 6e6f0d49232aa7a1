package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ckstn0777/timetable-builder/config"
	"github.com/ckstn0777/timetable-builder/internal/api/handler"
	"github.com/ckstn0777/timetable-builder/internal/api/router"
	"github.com/ckstn0777/timetable-builder/internal/registry"
	"github.com/ckstn0777/timetable-builder/internal/service"
	"github.com/ckstn0777/timetable-builder/internal/storage"
	applogger "github.com/ckstn0777/timetable-builder/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("storage_path", cfg.Storage.Path),
	)

	// 3. 打开本地持久存储
	store, err := storage.Open(cfg.Storage.Path, logger)
	if err != nil {
		logger.Fatal("打开本地存储失败", zap.Error(err))
	}
	defer store.Close()

	// 4. 依赖注入: Registry → Service → Handler
	reg := registry.NewRegistry()
	svc := service.NewService(reg, store, logger)
	h := handler.NewHandler(svc)

	// 5. 初始加载（LOADING 期间抑制自动保存）
	svc.Timetable.Load()

	// 6. 初始化路由
	engine := router.Setup(cfg, h, logger)

	// 7. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 8. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}
